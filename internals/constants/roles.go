package constants

import "fmt"

const (
	RoleAthlete  = "athlete"
	RoleReviewer = "reviewer"
	RoleOwner    = "owner"
)

// Sentinel scope: reviewer dengan scope ini boleh lihat semua cabang olahraga
const SportScopeAll = "all"

// Template pesan error role
const (
	ErrOnlyReviewersCanAccess = "❌ Hanya reviewer atau owner yang boleh mengakses fitur %s."
	ErrOnlyAthletesCanAccess  = "❌ Hanya atlet yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess    = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorReviewer(feature string) string {
	return fmt.Sprintf(ErrOnlyReviewersCanAccess, feature)
}

func RoleErrorAthlete(feature string) string {
	return fmt.Sprintf(ErrOnlyAthletesCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAthlete,
		RoleReviewer,
		RoleOwner,
	}

	ReviewerAndAbove = []string{
		RoleReviewer,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
