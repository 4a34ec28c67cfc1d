package domain

import "time"

// AdminIdentity is the privileged principal. It lives in its own storage
// namespace and is never derived from a general Identity, even one whose
// role claims admin.
type AdminIdentity struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	LastLogin time.Time `json:"last_login,omitempty"`
}

// AuditEntry records one privileged session transition.
type AuditEntry struct {
	AdminID   string    `json:"admin_id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"` // "login" or "logout"
	Timestamp time.Time `json:"timestamp"`
}
