package permission

import (
	"fmt"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
)

const reasonUnknownRole = "Unknown role"

// TaskValidator entscheidet über Aufgabenaktionen eines Principals. Er ist zustandslos und wirft nie.
// Jede Prüfung wertet zuerst die Rolle aus und erst danach die Unternehmenseinstellungen.
type TaskValidator struct {
	principal *entity.Principal
	settings  *entity.IntegrationSettingsEntity
}

// NewTaskValidator erzeugt einen Validator. settings darf nil sein; alle Einstellungs-Gates verweigern dann.
func NewTaskValidator(principal *entity.Principal, settings *entity.IntegrationSettingsEntity) *TaskValidator {
	return &TaskValidator{principal: principal, settings: settings}
}

func (v *TaskValidator) CanCreateTask() Decision {
	switch v.principal.Role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleTeamLead:
		return allow()
	case entity.RoleHR:
		return deny("HR cannot create tasks")
	case entity.RoleEmployee:
		if v.settings == nil || !v.settings.AllowEmployeeTaskCreation {
			return deny("Employee task creation disabled by admin")
		}
		return allow()
	}
	return deny(reasonUnknownRole)
}

func (v *TaskValidator) CanAssignToUser(assignee *entity.Principal) Decision {
	switch v.principal.Role {
	case entity.RoleAdmin, entity.RoleManager:
		return allow()
	case entity.RoleHR:
		return deny("HR cannot assign tasks")
	case entity.RoleTeamLead:
		return v.departmentRule(assignee)
	case entity.RoleEmployee:
		if v.settings == nil || !v.settings.AllowEmployeeTaskAssignment {
			return deny("Employee task assignment disabled by admin")
		}
		return v.departmentRule(assignee)
	}
	return deny(reasonUnknownRole)
}

// departmentRule: allow_intra_department_assignments=true erlaubt abteilungsübergreifende Zuweisung.
func (v *TaskValidator) departmentRule(assignee *entity.Principal) Decision {
	if entity.SameDepartment(assignee.DepartmentID, v.principal.DepartmentID) {
		return allow()
	}
	if v.settings == nil || !v.settings.AllowIntraDepartmentAssignments {
		return deny("Cross-department assignment not allowed")
	}
	return allow()
}

func (v *TaskValidator) CanViewTask(task *entity.TaskEntity) Decision {
	switch v.principal.Role {
	case entity.RoleAdmin, entity.RoleManager:
		return allow()
	case entity.RoleHR:
		return deny("HR cannot view tasks")
	case entity.RoleTeamLead:
		if v.ownsDepartmentOrAssignment(task) {
			return allow()
		}
		return deny("Cannot view tasks outside your department")
	case entity.RoleEmployee:
		if task.AssignedTo == v.principal.ID {
			return allow()
		}
		return deny("Can only view tasks assigned to you")
	}
	return deny(reasonUnknownRole)
}

func (v *TaskValidator) CanUpdateTask(task *entity.TaskEntity) Decision {
	switch v.principal.Role {
	case entity.RoleAdmin, entity.RoleManager:
		return allow()
	case entity.RoleHR:
		return deny("HR cannot update tasks")
	case entity.RoleTeamLead:
		if v.ownsDepartmentOrAssignment(task) {
			return allow()
		}
		return deny("Can only update tasks in your department")
	case entity.RoleEmployee:
		if task.AssignedTo == v.principal.ID {
			return allow()
		}
		return deny("Can only update tasks assigned to you")
	}
	return deny(reasonUnknownRole)
}

func (v *TaskValidator) CanCommentTask(task *entity.TaskEntity) Decision {
	switch v.principal.Role {
	case entity.RoleAdmin, entity.RoleManager:
		return allow()
	case entity.RoleHR:
		return deny("HR cannot comment on tasks")
	case entity.RoleTeamLead:
		if v.ownsDepartmentOrAssignment(task) {
			return allow()
		}
		return deny("Cannot comment on tasks outside your department")
	case entity.RoleEmployee:
		if task.AssignedTo == v.principal.ID || task.AssignedBy == v.principal.ID {
			return allow()
		}
		return deny("Can only comment on tasks assigned to or by you")
	}
	return deny(reasonUnknownRole)
}

func (v *TaskValidator) CanEditTimelinePriority() Decision {
	switch v.principal.Role {
	case entity.RoleAdmin:
		return allow()
	case entity.RoleHR, entity.RoleEmployee:
		return deny(fmt.Sprintf("Role '%s' cannot edit timeline/priority", v.principal.Role))
	case entity.RoleManager, entity.RoleTeamLead:
		if v.settings == nil || !v.settings.AllowTimelinePriorityEditing {
			return deny("Timeline and priority editing disabled by admin")
		}
		return allow()
	}
	return deny(reasonUnknownRole)
}

// CanDeleteTask erlaubt das (weiche) Löschen nur dem ursprünglichen Ersteller, Admins und Managern.
func (v *TaskValidator) CanDeleteTask(task *entity.TaskEntity) Decision {
	switch v.principal.Role {
	case entity.RoleAdmin, entity.RoleManager:
		return allow()
	case entity.RoleHR, entity.RoleTeamLead, entity.RoleEmployee:
		if task.AssignedBy == v.principal.ID {
			return allow()
		}
		return deny("Only the task creator, admins or managers can delete tasks")
	}
	return deny(reasonUnknownRole)
}

// CanApproveRedirection: der eingetragene Team-Lead einer umgeleiteten Aufgabe, Admins und Manager.
func (v *TaskValidator) CanApproveRedirection(task *entity.TaskEntity) Decision {
	if !task.IsRedirectedToTeamLead || !task.TeamLeadApprovalPending {
		return invalid("Task is not awaiting team lead approval")
	}
	switch v.principal.Role {
	case entity.RoleAdmin, entity.RoleManager:
		return allow()
	case entity.RoleHR, entity.RoleTeamLead, entity.RoleEmployee:
		if task.TeamLeadID != nil && *task.TeamLeadID == v.principal.ID {
			return allow()
		}
		return deny("Only the responsible team lead can approve this task")
	}
	return deny(reasonUnknownRole)
}

// ValidateCreation prüft die Anzahl der Empfänger gegen allow_multi_task_assignment.
func (v *TaskValidator) ValidateCreation(assigneeCount int) Decision {
	if assigneeCount < 1 {
		return invalid("At least one assignee is required")
	}
	if assigneeCount > 1 && (v.settings == nil || !v.settings.AllowMultiTaskAssignment) {
		return invalid("Multiple assignees not allowed")
	}
	return allow()
}

// CrossDepartmentRedirection liefert den Abteilungsleiter, an den eine abteilungsübergreifende Zuweisung umgeleitet wird.
// department ist die Abteilung des Empfängers (nil, wenn unbekannt). Fehlt ein Leiter, wird nicht umgeleitet.
func (v *TaskValidator) CrossDepartmentRedirection(assignee *entity.Principal, department *entity.Department) (bool, *string) {
	if entity.SameDepartment(assignee.DepartmentID, v.principal.DepartmentID) {
		return false, nil
	}
	if v.settings == nil || v.settings.CrossDepartmentRedirection != entity.RedirectionTeamLead {
		return false, nil
	}
	if department == nil || department.HeadID == nil {
		return false, nil
	}
	head := *department.HeadID
	return true, &head
}

// VisibilityScope beschreibt die Menge der Aufgaben, die der Principal auflisten darf.
func (v *TaskValidator) VisibilityScope() entity.TaskScope {
	scope := entity.TaskScope{
		Kind:        entity.ScopeNone,
		CompanyID:   v.principal.CompanyID,
		PrincipalID: v.principal.ID,
	}
	switch v.principal.Role {
	case entity.RoleAdmin, entity.RoleManager:
		scope.Kind = entity.ScopeCompany
	case entity.RoleTeamLead:
		scope.Kind = entity.ScopeDepartmentOrAssigner
		scope.DepartmentID = v.principal.DepartmentID
	case entity.RoleEmployee:
		scope.Kind = entity.ScopeAssignee
	}
	return scope
}

func (v *TaskValidator) ownsDepartmentOrAssignment(task *entity.TaskEntity) bool {
	return entity.InDepartment(task.AssignedDepartmentID, v.principal.DepartmentID) ||
		task.AssignedTo == v.principal.ID ||
		task.AssignedBy == v.principal.ID
}
