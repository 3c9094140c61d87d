package entity

// IssueCategories lists the accepted issue categories.
var IssueCategories = []string{
	"plumbing", "electrical", "cleanliness", "internet",
	"furniture", "ac_heating", "security", "other",
}

var IssuePriorities = []string{"low", "medium", "high", "emergency"}

// IssueStatuses is ordered: forward movement is the expected flow,
// but transitions are not enforced (admin override is allowed).
var IssueStatuses = []string{"reported", "assigned", "in progress", "resolved", "closed"}

var AnnouncementPriorities = []string{"low", "medium", "high", "urgent"}

var LostFoundTypes = []string{"lost", "found"}

var LostFoundStatuses = []string{"active", "claimed"}

var UserRoles = []string{"student", "admin"}

var Hostels = []string{
	"Hostel A - Boys",
	"Hostel B - Boys",
	"Hostel C - Girls",
	"Hostel D - Girls",
}

// AllHostels is the announcement scope that every student can see.
const AllHostels = "All Hostels"

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func ValidIssueCategory(v string) bool       { return contains(IssueCategories, v) }
func ValidIssuePriority(v string) bool       { return contains(IssuePriorities, v) }
func ValidIssueStatus(v string) bool         { return contains(IssueStatuses, v) }
func ValidAnnouncementPriority(v string) bool { return contains(AnnouncementPriorities, v) }
func ValidLostFoundType(v string) bool       { return contains(LostFoundTypes, v) }
func ValidLostFoundStatus(v string) bool     { return contains(LostFoundStatuses, v) }
func ValidRole(v string) bool                { return contains(UserRoles, v) }

// StatusRank returns the position of an issue status in the expected
// lifecycle, or -1 for an unknown status.
func StatusRank(status string) int {
	for i, s := range IssueStatuses {
		if s == status {
			return i
		}
	}
	return -1
}
