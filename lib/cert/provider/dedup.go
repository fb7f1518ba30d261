package provider

import (
	"github.com/samber/lo"
)

// DedupSANs returns names without duplicates, empty entries or the certificate's primary name,
// keeping first-seen order. The result is nil when nothing is left.
func DedupSANs(primary string, names []string) []string {
	sans := lo.Uniq(lo.Filter(names, func(name string, _ int) bool {
		return name != "" && name != primary
	}))
	if len(sans) == 0 {
		return nil
	}
	return sans
}
