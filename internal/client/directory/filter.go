package directory

import (
	"strings"

	"github.com/Zeldris69240/reqres-app/internal/client/models"
)

// Filter projects the given records down to those whose first name, last
// name and email, taken together, contain query as a case-insensitive
// substring. An empty query returns every record. The input order is kept
// and the input slice is never mutated.
//
// Filter is pure: it is recomputed on every call and holds no state, so
// the projection can never go stale relative to the cache.
func Filter(users []models.User, query string) []models.User {
	if query == "" {
		return append([]models.User(nil), users...)
	}
	q := strings.ToLower(query)
	result := make([]models.User, 0, len(users))
	for _, u := range users {
		haystack := strings.ToLower(u.FirstName + u.LastName + u.Email)
		if strings.Contains(haystack, q) {
			result = append(result, u)
		}
	}
	return result
}
