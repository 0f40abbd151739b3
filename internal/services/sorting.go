package services

import (
	"sort"
	"strings"
	"time"

	"jobportal/internal/models"
)

// isAscending - по умолчанию сортируем по убыванию, "asc" в любом регистре дает возрастание
func isAscending(direction string) bool {
	return strings.EqualFold(strings.TrimSpace(direction), "asc")
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// ============================================================================
// Отклики
// ============================================================================

type applicationComparator func(a, b *models.JobApplication) int

func firstSkill(app *models.JobApplication) string {
	if len(app.Skills) == 0 {
		return ""
	}
	return app.Skills[0]
}

var applicationComparators = map[string]applicationComparator{
	"date": func(a, b *models.JobApplication) int { return compareTime(a.ApplicationDate, b.ApplicationDate) },
	"name": func(a, b *models.JobApplication) int { return compareFold(a.Name, b.Name) },
	"email": func(a, b *models.JobApplication) int {
		return compareFold(a.Email, b.Email)
	},
	"status": func(a, b *models.JobApplication) int {
		return compareFold(string(a.Status), string(b.Status))
	},
	"experience":  func(a, b *models.JobApplication) int { return compareFold(a.Experience, b.Experience) },
	"degree":      func(a, b *models.JobApplication) int { return compareFold(a.Degree, b.Degree) },
	"skills":      func(a, b *models.JobApplication) int { return compareFold(firstSkill(a), firstSkill(b)) },
	"phone":       func(a, b *models.JobApplication) int { return compareFold(a.Phone, b.Phone) },
	"jobid":       func(a, b *models.JobApplication) int { return compareFold(a.JobID, b.JobID) },
	"jobseekerid": func(a, b *models.JobApplication) int { return compareFold(a.JobSeekerID, b.JobSeekerID) },
}

// applicationSortKey нормализует ключ; неизвестный ключ означает "date"
func applicationSortKey(sortBy string) string {
	key := strings.ToLower(strings.TrimSpace(sortBy))
	if key == "applicationdate" {
		return "date"
	}
	if _, ok := applicationComparators[key]; !ok {
		return "date"
	}
	return key
}

// SortApplications возвращает отсортированную копию (сортировка стабильная)
func SortApplications(apps []models.JobApplication, sortBy, direction string) []models.JobApplication {
	sorted := make([]models.JobApplication, len(apps))
	copy(sorted, apps)

	cmp := applicationComparators[applicationSortKey(sortBy)]
	ascending := isAscending(direction)

	sort.SliceStable(sorted, func(i, j int) bool {
		result := cmp(&sorted[i], &sorted[j])
		if ascending {
			return result < 0
		}
		return result > 0
	})
	return sorted
}

// ============================================================================
// Вакансии
// ============================================================================

// jobComparator сравнивает по полю; null-значение поля помечается флагами
type jobComparator func(a, b *models.Job) (result int, aNull, bNull bool)

var jobComparators = map[string]jobComparator{
	"salary": func(a, b *models.Job) (int, bool, bool) {
		if a.ExpectedSalary == nil || b.ExpectedSalary == nil {
			return 0, a.ExpectedSalary == nil, b.ExpectedSalary == nil
		}
		switch {
		case *a.ExpectedSalary < *b.ExpectedSalary:
			return -1, false, false
		case *a.ExpectedSalary > *b.ExpectedSalary:
			return 1, false, false
		}
		return 0, false, false
	},
	"date": func(a, b *models.Job) (int, bool, bool) {
		return compareTime(a.PostedDate, b.PostedDate), a.PostedDate.IsZero(), b.PostedDate.IsZero()
	},
	"company": func(a, b *models.Job) (int, bool, bool) {
		return compareFold(a.CompanyName, b.CompanyName), a.CompanyName == "", b.CompanyName == ""
	},
	"title": func(a, b *models.Job) (int, bool, bool) {
		return compareFold(a.JobTitle, b.JobTitle), a.JobTitle == "", b.JobTitle == ""
	},
}

func jobSortKey(sortBy string) string {
	key := strings.ToLower(strings.TrimSpace(sortBy))
	if _, ok := jobComparators[key]; !ok {
		return "date"
	}
	return key
}

// SortJobs возвращает отсортированную копию. Пустые значения поля идут первыми
// при возрастании и последними при убывании.
func SortJobs(jobs []models.Job, sortBy, sortOrder string) []models.Job {
	sorted := make([]models.Job, len(jobs))
	copy(sorted, jobs)

	cmp := jobComparators[jobSortKey(sortBy)]
	ascending := isAscending(sortOrder)

	sort.SliceStable(sorted, func(i, j int) bool {
		result, iNull, jNull := cmp(&sorted[i], &sorted[j])
		switch {
		case iNull && jNull:
			return false
		case iNull:
			return ascending
		case jNull:
			return !ascending
		}
		if ascending {
			return result < 0
		}
		return result > 0
	})
	return sorted
}
