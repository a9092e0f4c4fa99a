package clabe

// ErrorKind names the first rule a candidate CLABE broke. Kinds are checked
// in declaration order and only the first failure is reported.
type ErrorKind string

const (
	KindLength     ErrorKind = "length"
	KindCharacters ErrorKind = "characters"
	KindChecksum   ErrorKind = "checksum"
	KindBank       ErrorKind = "bank"
	KindCity       ErrorKind = "city"
)

// ErrorKinds lists every kind in priority order.
var ErrorKinds = []ErrorKind{KindLength, KindCharacters, KindChecksum, KindBank, KindCity}

// Code returns the machine-readable error code, e.g. "invalid-checksum".
func (k ErrorKind) Code() string {
	if k == "" {
		return ""
	}
	return "invalid-" + string(k)
}

// wellFormed reports whether a failure of this kind still leaves a
// structurally and arithmetically correct CLABE.
func (k ErrorKind) wellFormed() bool {
	return k == "" || k == KindBank || k == KindCity
}

// ValidationResult describes a candidate CLABE. Bank and city fields are set
// only when the corresponding lookup succeeds, regardless of OK.
type ValidationResult struct {
	OK       bool      `json:"ok"`
	Kind     ErrorKind `json:"error_kind,omitempty"`
	Error    string    `json:"error,omitempty"`
	FormatOK bool      `json:"format_ok"`
	Message  string    `json:"message"`
	BankTag  string    `json:"bank_tag,omitempty"`
	BankName string    `json:"bank_name,omitempty"`
	CityName string    `json:"city_name,omitempty"`
	Account  string    `json:"account"`
	BankCode string    `json:"bank_code"`
	CityCode string    `json:"city_code"`
	Checksum *int      `json:"checksum"`
}
