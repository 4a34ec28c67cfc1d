package domain

// Facet is the presented role for dual-capability accounts. Switching the
// facet never changes the underlying Role claim used for authorization.
type Facet string

const (
	FacetStartup   Facet = "startup"
	FacetRecruiter Facet = "recruiter"
)

// facetPermissions defines which facets each base role may present.
// Startup-base accounts may present either facet; recruiter-base accounts are
// locked to the recruiter facet. Every other role has no facet at all.
var facetPermissions = map[Role][]Facet{
	RoleStartup:   {FacetStartup, FacetRecruiter},
	RoleRecruiter: {FacetRecruiter},
}

// CanSwitchFacet reports whether an account with the given base role may
// present the target facet.
func CanSwitchFacet(base Role, target Facet) bool {
	for _, allowed := range facetPermissions[base] {
		if allowed == target {
			return true
		}
	}
	return false
}

// DefaultFacet returns the facet an account presents before any explicit
// selection. Roles without facet capability return the empty facet.
func DefaultFacet(base Role) Facet {
	switch base {
	case RoleStartup:
		return FacetStartup
	case RoleRecruiter:
		return FacetRecruiter
	default:
		return ""
	}
}

// ActiveRoleSelection is the persisted facet preference for one account. It is
// a preference, not a credential: it outlives individual sessions.
type ActiveRoleSelection struct {
	AccountID string `json:"account_id"`
	Facet     Facet  `json:"facet"`
}
