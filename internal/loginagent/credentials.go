package loginagent

// CredentialsKind selects how a ClientLogin packet's password bytes are
// interpreted (spec.md §4.1; grounded on
// original_source/api/src/login/credentials.rs LoginCredentials).
type CredentialsKind int

const (
	CredentialsClearText CredentialsKind = iota
	CredentialsHashed
)

// Credentials is the normalized form of a ClientLogin request, after the
// V1/V2/V3 clear/hashed wire variants have been decoded (spec.md §4.1).
type Credentials struct {
	Kind       CredentialsKind
	ClientType uint8
	Username   string
	ClearText  string
	Hashed     [16]byte
}
