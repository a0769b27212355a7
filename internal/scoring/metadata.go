package scoring

import (
	"strings"

	"myfragance/internal/model"
)

// extractMetadata copies response values from the known metadata
// categories into the profile, and collects contextual tags from every
// selected option. List-valued categories copy all selected values;
// scalar categories copy the first.
func (e *Engine) extractMetadata(profile *model.UnifiedProfile, responses map[string]model.UnifiedResponse, active []model.Question) {
	for i := range active {
		q := &active[i]
		resp, ok := responses[q.ID]
		if !ok {
			continue
		}

		switch q.Category {
		case model.CategoryGender:
			profile.GenderPreference = scalarValue(q, &resp)
		case model.CategoryIntensity:
			profile.IntensityPreference = scalarValue(q, &resp)
		case model.CategoryDuration:
			profile.DurationPreference = scalarValue(q, &resp)
		case model.CategoryProjection:
			profile.ProjectionPreference = scalarValue(q, &resp)
		case model.CategoryPriceRange:
			profile.PriceRange = scalarValue(q, &resp)
		case model.CategoryReference:
			profile.ReferencePerfumeKey = scalarValue(q, &resp)
		case model.CategorySeason:
			profile.Seasons = appendUnique(profile.Seasons, listValues(q, &resp)...)
		case model.CategoryOccasion:
			profile.Occasions = appendUnique(profile.Occasions, listValues(q, &resp)...)
		case model.CategoryPersonality:
			profile.Personalities = appendUnique(profile.Personalities, listValues(q, &resp)...)
		case model.CategoryNotes:
			profile.PreferredNotes = appendUnique(profile.PreferredNotes, listValues(q, &resp)...)
		case model.CategoryRecipient:
			if profile.Recipient == nil {
				profile.Recipient = &model.RecipientInfo{}
			}
			profile.Recipient.Relationship = scalarValue(q, &resp)
		}

		// Contextual tags ride along on any selected option, whatever the
		// question's category.
		for _, optID := range resp.SelectedOptionIDs {
			opt := q.OptionByID(optID)
			if opt == nil {
				continue
			}
			profile.Seasons = appendUnique(profile.Seasons, opt.Seasons...)
			profile.Occasions = appendUnique(profile.Occasions, opt.Occasions...)
			profile.Personalities = appendUnique(profile.Personalities, opt.Personalities...)
			if profile.IntensityPreference == "" && opt.Intensity != "" {
				profile.IntensityPreference = opt.Intensity
			}
			if profile.ProjectionPreference == "" && opt.Projection != "" {
				profile.ProjectionPreference = opt.Projection
			}
		}
	}
}

// scalarValue reads a single value from a response: the first selected
// option's canonical value, falling back to free text.
func scalarValue(q *model.Question, resp *model.UnifiedResponse) string {
	if len(resp.SelectedOptionIDs) > 0 {
		if opt := q.OptionByID(resp.SelectedOptionIDs[0]); opt != nil {
			return opt.Value
		}
	}
	if resp.HasFreeText() {
		return resp.FreeText
	}
	return ""
}

// listValues reads every selected option value from a response, falling
// back to the trimmed free text when no option value was collected (the
// same fallback scalarValue applies).
func listValues(q *model.Question, resp *model.UnifiedResponse) []string {
	values := make([]string, 0, len(resp.SelectedOptionIDs))
	for _, optID := range resp.SelectedOptionIDs {
		if opt := q.OptionByID(optID); opt != nil {
			values = append(values, opt.Value)
		}
	}
	if len(values) == 0 && resp.HasFreeText() {
		values = append(values, strings.TrimSpace(resp.FreeText))
	}
	return values
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if v == "" {
			continue
		}
		exists := false
		for _, d := range dst {
			if d == v {
				exists = true
				break
			}
		}
		if !exists {
			dst = append(dst, v)
		}
	}
	return dst
}
