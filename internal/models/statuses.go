package models

import (
	"fmt"
	"strings"
)

type UserRole string
type ApplicationStatus string
type WorkPreference string

const (
	UserRoleJobSeeker UserRole = "JOB_SEEKER"
	UserRoleJobHirer  UserRole = "JOB_HIRER"

	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"

	WorkPreferenceRemote WorkPreference = "REMOTE"
	WorkPreferenceOnsite WorkPreference = "ONSITE"
	WorkPreferenceHybrid WorkPreference = "HYBRID"
)

var (
	userRoles           = []UserRole{UserRoleJobSeeker, UserRoleJobHirer}
	applicationStatuses = []ApplicationStatus{ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected}
	workPreferences     = []WorkPreference{WorkPreferenceRemote, WorkPreferenceOnsite, WorkPreferenceHybrid}
)

// canonical приводит значение к хранимому виду: без пробелов по краям, в верхнем регистре
func canonical(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// ParseUserRole разбирает роль без учета регистра
func ParseUserRole(value string) (UserRole, error) {
	role := UserRole(canonical(value))
	for _, r := range userRoles {
		if r == role {
			return role, nil
		}
	}
	return "", fmt.Errorf("invalid role %q: must be one of JOB_SEEKER, JOB_HIRER", value)
}

// ParseApplicationStatus разбирает статус отклика без учета регистра
func ParseApplicationStatus(value string) (ApplicationStatus, error) {
	status := ApplicationStatus(canonical(value))
	for _, s := range applicationStatuses {
		if s == status {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid status %q: must be one of PENDING, ACCEPTED, REJECTED", value)
}

// ParseWorkPreference разбирает формат работы без учета регистра
func ParseWorkPreference(value string) (WorkPreference, error) {
	pref := WorkPreference(canonical(value))
	for _, p := range workPreferences {
		if p == pref {
			return pref, nil
		}
	}
	return "", fmt.Errorf("invalid preference %q: must be one of REMOTE, ONSITE, HYBRID", value)
}

// IsTerminal - из ACCEPTED и REJECTED переходов нет
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}
