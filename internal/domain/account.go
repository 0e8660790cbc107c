package domain

// AccountRecord is one entry of the master account roster.
//
// The loader already applies the roster rename map (Account Name ->
// Lab_name_Masterlist, Billing State/Province -> State, Account Owner: Full
// Name -> Account Owner, Type -> Customer Type); the cleaner derives
// TruelabID from the raw serial and normalizes the account display name.
// No roster row is ever dropped.
type AccountRecord struct {
	Zone              string
	LabNameMasterlist string
	State             string
	AccountOwner      string
	CustomerType      string

	// Raw "Serial / Batch ID: Serial / Batch #" value.
	SerialBatchID string
	// Derived join key. Empty when the roster serial is blank; empty keys
	// never join (the account reports as Inactive).
	TruelabID string
}
