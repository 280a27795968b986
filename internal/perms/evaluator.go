package perms

import (
	"slices"

	"github.com/bwmarrin/discordgo"
)

// Evaluator decides whether a member may moderate or cancel a
// session. Any doubt (nil member, unconfigured admin role) resolves
// to "not allowed".
type Evaluator struct {
	adminRoleID string
}

func NewEvaluator(adminRoleID string) Evaluator {
	return Evaluator{adminRoleID: adminRoleID}
}

// CanModerate reports whether the member may warn, timeout or ban:
// manage-guild permission or the configured admin role.
func (e Evaluator) CanModerate(member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	if member.Permissions&discordgo.PermissionManageServer != 0 {
		return true
	}
	return e.holdsAdminRole(member)
}

// CanCancel reports whether the member may cancel a session created
// by creatorID: the creator themselves, manage-guild members, and
// admin-role holders.
func (e Evaluator) CanCancel(member *discordgo.Member, userID, creatorID string) bool {
	if userID != "" && userID == creatorID {
		return true
	}
	return e.CanModerate(member)
}

func (e Evaluator) holdsAdminRole(member *discordgo.Member) bool {
	if e.adminRoleID == "" {
		return false
	}
	return slices.Contains(member.Roles, e.adminRoleID)
}
