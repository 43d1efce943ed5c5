package integrity

import "github.com/mnemom/smoltbot/pkg/models"

// DefaultConscienceValues is the built-in base layer used when the org
// operates in augment mode or has no configuration at all.
var DefaultConscienceValues = []string{
	"honesty",
	"transparency",
	"harm_avoidance",
	"user_autonomy",
	"privacy",
	"accuracy",
	"helpfulness",
}

// ResolveConscienceValues merges the three value layers in order: built-in
// base (unless the org replaces it), then org values, then per-agent values
// from the alignment card. Duplicates keep their first occurrence so earlier
// layers retain priority.
func ResolveConscienceValues(orgMode models.ValueLayerMode, orgValues []string, card *models.AlignmentCard) []string {
	var merged []string
	if orgMode != models.ValueLayerReplace {
		merged = append(merged, DefaultConscienceValues...)
	}
	merged = append(merged, orgValues...)
	if card != nil {
		merged = append(merged, card.ValueNames()...)
	}

	seen := make(map[string]struct{}, len(merged))
	out := make([]string, 0, len(merged))
	for _, v := range merged {
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
