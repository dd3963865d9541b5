package ledger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/anyswap/OpenChain-Wallet/common"
	"github.com/anyswap/OpenChain-Wallet/signer"
	"github.com/anyswap/OpenChain-Wallet/types"
	"github.com/gorilla/mux"
)

// fakeLedger serves the ledger http api from memory
type fakeLedger struct {
	mu          sync.Mutex
	info        string
	values      map[string]*valueResult
	accounts    map[string][]*accountResult
	subaccounts map[string][]*valueResult
	rawReplies  map[string]string
	submitted   []*submitRequest
	rejectWith  int
	rejectBody  string
	infoCalls   int

	server *httptest.Server
}

func newFakeLedger() *fakeLedger {
	l := &fakeLedger{
		info:        `{"root_url":"","name":"Test Ledger","validator_url":"https://validator/","tos":"https://tos/","webpage_url":"https://web/","namespace":"00"}`,
		values:      make(map[string]*valueResult),
		accounts:    make(map[string][]*accountResult),
		subaccounts: make(map[string][]*valueResult),
		rawReplies:  make(map[string]string),
	}
	router := mux.NewRouter()
	router.HandleFunc("/info", l.handleInfo).Methods(http.MethodGet)
	router.HandleFunc("/value", l.handleValue).Methods(http.MethodGet)
	router.HandleFunc("/query/account", l.handleAccount).Methods(http.MethodGet)
	router.HandleFunc("/query/subaccounts", l.handleSubaccounts).Methods(http.MethodGet)
	router.HandleFunc("/submit", l.handleSubmit).Methods(http.MethodPost)
	l.server = httptest.NewServer(router)
	return l
}

func (l *fakeLedger) close() {
	l.server.Close()
}

func (l *fakeLedger) endpoint() *types.Endpoint {
	return &types.Endpoint{ID: 0, RootURL: l.server.URL + "/", Name: "fake"}
}

func (l *fakeLedger) setValue(key, value, version []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values[common.ToHex(key)] = &valueResult{
		Key:     common.ToHex(key),
		Value:   common.ToHex(value),
		Version: common.ToHex(version),
	}
}

// setRawReply makes path return body verbatim
func (l *fakeLedger) setRawReply(path, body string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rawReplies[path] = body
}

func (l *fakeLedger) rawReply(w http.ResponseWriter, r *http.Request) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	body, exist := l.rawReplies[r.URL.Path]
	if exist {
		_, _ = w.Write([]byte(body))
	}
	return exist
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (l *fakeLedger) handleInfo(w http.ResponseWriter, r *http.Request) {
	l.mu.Lock()
	l.infoCalls++
	info := l.info
	l.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(info))
}

func (l *fakeLedger) handleValue(w http.ResponseWriter, r *http.Request) {
	if l.rawReply(w, r) {
		return
	}
	key := r.URL.Query().Get("key")
	if !common.IsHex(key) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error_code": "InvalidKey"})
		return
	}
	l.mu.Lock()
	result, exist := l.values[key]
	l.mu.Unlock()
	if !exist {
		result = &valueResult{Key: key, Value: "", Version: ""}
	}
	writeJSON(w, http.StatusOK, result)
}

func (l *fakeLedger) handleAccount(w http.ResponseWriter, r *http.Request) {
	if l.rawReply(w, r) {
		return
	}
	l.mu.Lock()
	results := l.accounts[r.URL.Query().Get("account")]
	l.mu.Unlock()
	if results == nil {
		results = []*accountResult{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (l *fakeLedger) handleSubaccounts(w http.ResponseWriter, r *http.Request) {
	if l.rawReply(w, r) {
		return
	}
	l.mu.Lock()
	results := l.subaccounts[r.URL.Query().Get("account")]
	l.mu.Unlock()
	if results == nil {
		results = []*valueResult{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (l *fakeLedger) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error_code": "InvalidRequest"})
		return
	}
	l.mu.Lock()
	l.submitted = append(l.submitted, &req)
	rejectWith, rejectBody := l.rejectWith, l.rejectBody
	l.mu.Unlock()
	if l.rawReply(w, r) {
		return
	}

	if rejectWith != 0 {
		w.WriteHeader(rejectWith)
		_, _ = w.Write([]byte(rejectBody))
		return
	}
	tx, err := common.FromHex(req.Transaction)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error_code": "InvalidTransaction"})
		return
	}
	for _, sig := range req.Signatures {
		pubKey, err1 := common.FromHex(sig.PubKey)
		sigData, err2 := common.FromHex(sig.Signature)
		if err1 != nil || err2 != nil || signer.Verify(tx, &types.Signature{PublicKey: pubKey, Signature: sigData}) != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error_code": "InvalidSignature"})
			return
		}
	}
	hash := signer.Hash(tx)
	writeJSON(w, http.StatusOK, &types.SubmitResult{
		TransactionHash: common.ToHex(hash),
		MutationHash:    common.ToHex(hash[:16]),
	})
}

func (l *fakeLedger) setAccounts(account string, results []*accountResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts[account] = results
}

func (l *fakeLedger) addAccount(account string, result *accountResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts[account] = append(l.accounts[account], result)
}

func (l *fakeLedger) setSubaccounts(account string, results []*valueResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subaccounts[account] = results
}

func (l *fakeLedger) reject(status int, body string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rejectWith = status
	l.rejectBody = body
}

func (l *fakeLedger) submittedRequests() []*submitRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*submitRequest{}, l.submitted...)
}

func (l *fakeLedger) infoCallCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.infoCalls
}
