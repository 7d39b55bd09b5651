package model

// PincodeStatus is the small enumeration sent to the client to drive its
// pincode dialog (spec.md §3).
type PincodeStatus uint16

const (
	PincodeCorrect                PincodeStatus = 0
	PincodeAskForPin              PincodeStatus = 1
	PincodeMustBeChanged          PincodeStatus = 2
	PincodeNeedNewPin             PincodeStatus = 3
	PincodeCreateNewPin           PincodeStatus = 4
	PincodeClientWarning          PincodeStatus = 5
	PincodeUnableToUseKSSNNumber  PincodeStatus = 6
	PincodeShowButton             PincodeStatus = 7
	PincodeIncorrect              PincodeStatus = 8
)

// PincodeInfo is what the character server sends after ConnectClient to
// drive the client's pincode dialog. Seed is a fresh random value per
// connection; wire order is seed, account_id, status — see
// original_source/api/src/character/response.rs and SPEC_FULL.md §4.
type PincodeInfo struct {
	Status    PincodeStatus
	AccountID uint32
	Seed      uint32
}
