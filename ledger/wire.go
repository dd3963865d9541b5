package ledger

// json shapes of the ledger http api, binary fields are hex strings

type valueResult struct {
	Key     string `json:"key,omitempty"`
	Value   string `json:"value"`
	Version string `json:"version"`
}

type accountResult struct {
	Account string `json:"account"`
	Asset   string `json:"asset"`
	Version string `json:"version"`
	Balance string `json:"balance"`
}

type submitRequest struct {
	Transaction string           `json:"transaction"`
	Signatures  []*signatureJSON `json:"signatures"`
}

type signatureJSON struct {
	PubKey    string `json:"pub_key"`
	Signature string `json:"signature"`
}

type rejectionResult struct {
	ErrorCode string `json:"error_code,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
}

func (r *rejectionResult) reason() string {
	switch {
	case r.ErrorCode != "":
		return r.ErrorCode
	case r.Error != "":
		return r.Error
	default:
		return r.Message
	}
}
