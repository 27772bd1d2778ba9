package enum

// AuditAction identifies the kind of mutating operation being audited
type AuditAction string

const (
	AuditActionCreate   AuditAction = "CREATE"
	AuditActionEdit     AuditAction = "EDIT"
	AuditActionDelete   AuditAction = "DELETE"
	AuditActionFinalize AuditAction = "FINALIZE"
)
