package services

import "github.com/Belphemur/YouTubeTranscript/internal/models"

// regionSuffixes are appended to the requested code, in priority order.
var regionSuffixes = []string{"_US", "-US", ".US"}

// LanguageVariants lists the codes tried for lang: the code itself, then its US regional spellings.
func LanguageVariants(lang models.LanguageCode) []models.LanguageCode {
	variants := make([]models.LanguageCode, 0, len(regionSuffixes)+1)
	variants = append(variants, lang)
	for _, suffix := range regionSuffixes {
		variants = append(variants, lang+models.LanguageCode(suffix))
	}
	return variants
}

// SelectTrack picks the subtitle track for lang.
//
// The first pass honours preferManual: with it only manual tracks qualify,
// without it the first variant present in either map wins (manual first).
// When the first pass finds nothing, a second pass takes the first variant
// present in either map regardless of preference, so a manual-only request may
// end up on automatic captions; Selection.Fallback marks that case.
// It returns nil when no variant exists in either map.
func SelectTrack(manual, auto models.TrackMap, lang models.LanguageCode, preferManual bool) *models.Selection {
	variants := LanguageVariants(lang)

	for _, variant := range variants {
		if preferManual {
			if manual.Has(variant) {
				return &models.Selection{Language: variant, IsManual: true}
			}
			continue
		}
		if manual.Has(variant) || auto.Has(variant) {
			return &models.Selection{Language: variant, IsManual: manual.Has(variant)}
		}
	}

	for _, variant := range variants {
		if manual.Has(variant) || auto.Has(variant) {
			return &models.Selection{Language: variant, IsManual: manual.Has(variant), Fallback: true}
		}
	}

	return nil
}

// AvailableLanguages lists manual keys then automatic keys, as shown in no-match errors.
// Keys present in both maps appear twice.
func AvailableLanguages(manual, auto models.TrackMap) []string {
	out := make([]string, 0, len(manual)+len(auto))
	for _, code := range manual.Languages() {
		out = append(out, string(code))
	}
	for _, code := range auto.Languages() {
		out = append(out, string(code))
	}
	return out
}
