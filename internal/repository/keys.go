package repository

// Storage keys. These exact strings match the ledger layout earlier
// deployments wrote, so an existing store keeps working when pointed at
// this implementation.
const (
	usersKey             = "users"
	currentUserKey       = "currentUser"
	hospitalsKey         = "hospitals"
	departmentsKey       = "departments"
	doctorSlotsKey       = "doctorSlots"
	auditLogsKey         = "auditLogs"
	patientHistoryPrefix = "patientHistory_"

	// patientIndexKey lists every patient with a ledger, so LoadAll does
	// not depend on prefix-scanning the keyspace. Absent in stores written
	// by earlier deployments; rebuilt from a prefix scan on first use.
	patientIndexKey = "patientHistoryIndex"
)

func patientHistoryKey(patientUniqueID string) string {
	return patientHistoryPrefix + patientUniqueID
}
