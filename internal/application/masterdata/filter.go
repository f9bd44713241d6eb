package masterdata

import "github.com/mdm/backend/internal/domain/shared"

// toRepositoryFilter converts the common list filter to a repository filter
func toRepositoryFilter(f ListFilter) shared.Filter {
	filter := shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
		Filters:  make(map[string]interface{}),
	}
	if f.Status != "" {
		filter.Filters["status"] = f.Status
	}
	return filter
}
