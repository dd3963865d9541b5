package main

import (
	"fmt"

	"github.com/anyswap/OpenChain-Wallet/common"
	"github.com/anyswap/OpenChain-Wallet/types"
	"github.com/fatih/color"
)

var (
	label   = color.New(color.FgCyan).SprintFunc()
	amount  = color.New(color.FgGreen, color.Bold).SprintFunc()
	warning = color.New(color.FgYellow).SprintFunc()
)

func printLedgerInfo(info *types.LedgerInfo) {
	fmt.Println(label("name:"), info.Name)
	fmt.Println(label("root url:"), info.RootURL)
	fmt.Println(label("validator url:"), info.ValidatorURL)
	fmt.Println(label("terms of service:"), info.TermsOfService)
	fmt.Println(label("webpage url:"), info.WebpageURL)
	fmt.Println(label("namespace:"), info.Namespace)
}

func printEndpoint(ep *types.Endpoint) {
	fmt.Printf("%v %v %v %v\n", label("endpoint"), ep.ID, ep.Name, ep.RootURL)
}

func printVersionedValue(v *types.VersionedValue) {
	fmt.Println(label("key:"), v.Key.String())
	if v.IsUnset() {
		fmt.Println(label("value:"), warning("<unset>"))
	} else {
		fmt.Println(label("value:"), common.ToHex(v.Value))
	}
	fmt.Println(label("version:"), common.ToHex(v.Version))
}

func printAccountRecord(r *types.AccountRecord) {
	fmt.Printf("%v %v %v %v %v %v\n", label("account"), r.Account, label("asset"), r.Asset, label("balance"), amount(r.Balance))
}

func printDataRecord(r *types.DataRecord) {
	fmt.Println(label("key:"), r.Key.String())
	if r.HasData() {
		fmt.Println(label("data:"), *r.Data)
	} else {
		fmt.Println(label("data:"), warning("<unset>"))
	}
	fmt.Println(label("version:"), common.ToHex(r.Version))
}

func printSubaccountRecord(r *types.SubaccountRecord) {
	fmt.Printf("%v %v %v %v %v %v\n", label("path"), r.RecordKey.Path, label(string(r.RecordKey.Type)), r.RecordKey.Name, label("value"), common.ToHex(r.Value))
}

func printSubmitResult(r *types.SubmitResult) {
	fmt.Println(label("transaction hash:"), r.TransactionHash)
	fmt.Println(label("mutation hash:"), r.MutationHash)
}
