package utils

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
)

// HalalSignal is the normalized tuple the override rules run against,
// independent of which resolution tier produced the food.
type HalalSignal struct {
	Name            string
	Category        string
	DetectedProtein string
	Confidence      float64
	// ExtraText is any generated analysis/advisory text already available;
	// the keyword rule scans it alongside the name.
	ExtraText string
}

// genericLabelTrapConfidence gates the vague-label rule: confident matches of
// a vague label are left to the other two rules.
const genericLabelTrapConfidence = 0.85

// nonHalalKeywords: pork terms, regional pork-dish synonyms, and
// alcohol-bearing ingredients/condiments. All lowercase.
var nonHalalKeywords = []string{
	"pork", "bacon", "ham", "lard", "pig",
	"char siew", "char siu", "siu yuk", "siew yoke",
	"bak kut teh", "bakut teh", "lap cheong", "bak kwa",
	"tonkotsu", "samgyeopsal", "chashu",
	"wine", "beer", "sake", "mirin", "rum", "brandy",
	"ang ciu", "rice wine", "liquor",
}

// vagueDishLabels are the deliberately generic names that most often let an
// ambiguous-meat dish slip past the keyword and protein rules.
var vagueDishLabels = []string{
	"stir fry", "stir-fry", "stir fried", "mixed rice", "economy rice",
	"noodle dish", "fried noodles", "meat dish", "rice dish", "mixed grill",
	"chap fan", "nasi campur",
}

// ambiguousProteinCategories are cuisines/categories where red meat of unknown
// origin is common.
var ambiguousProteinCategories = []string{
	"chinese", "asian", "fusion", "street food", "hawker", "mixed", "unknown", "",
}

var knownSafeProteins = map[string]bool{
	"chicken": true, "seafood": true, "fish": true, "prawn": true,
	"shrimp": true, "egg": true, "tofu": true, "none": true, "": true,
}

type halalRule struct {
	trigger models.HalalTrigger
	check   func(HalalSignal) (bool, string)
}

// Rules run in a fixed order and combine with OR; the first rule to fire
// decides the reason. Nothing below can unset a flag once set.
var halalRules = []halalRule{
	{models.TriggerKeyword, keywordRule},
	{models.TriggerProtein, detectedProteinRule},
	{models.TriggerGenericLabel, genericLabelTrapRule},
}

// AssessHalal runs the override rules against the resolved food. The default
// when no rule fires is "unknown": the engine never asserts halal on its own.
func AssessHalal(sig HalalSignal) models.HalalAssessment {
	sig.Name = strings.ToLower(strings.TrimSpace(sig.Name))
	sig.Category = strings.ToLower(strings.TrimSpace(sig.Category))
	sig.DetectedProtein = strings.ToLower(strings.TrimSpace(sig.DetectedProtein))
	sig.ExtraText = strings.ToLower(sig.ExtraText)

	for _, r := range halalRules {
		if hit, reason := r.check(sig); hit {
			return models.HalalAssessment{
				Status:      models.HalalBlocked,
				Reason:      reason,
				TriggeredBy: r.trigger,
			}
		}
	}
	return models.HalalAssessment{Status: models.HalalUnknown, TriggeredBy: models.TriggerNone}
}

// ReassessWithText rescans later-generated text (e.g. the advisory) with the
// keyword rule. It can only escalate: a non_halal verdict is never downgraded.
func ReassessWithText(current models.HalalAssessment, text string) models.HalalAssessment {
	if current.Status == models.HalalBlocked {
		return current
	}
	if hit, reason := keywordRule(HalalSignal{ExtraText: strings.ToLower(text)}); hit {
		return models.HalalAssessment{
			Status:      models.HalalBlocked,
			Reason:      reason,
			TriggeredBy: models.TriggerKeyword,
		}
	}
	return current
}

func keywordRule(sig HalalSignal) (bool, string) {
	haystack := sig.Name + " " + sig.ExtraText
	tokens := tokenize(haystack)
	for _, kw := range nonHalalKeywords {
		// Multi-word keywords match as phrases; single words must match a
		// whole token so "ham" does not flag "hamburger".
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(haystack, kw) {
				return true, fmt.Sprintf("matched keyword %q", kw)
			}
		} else if tokens[kw] {
			return true, fmt.Sprintf("matched keyword %q", kw)
		}
	}
	return false, ""
}

func tokenize(s string) map[string]bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

func detectedProteinRule(sig HalalSignal) (bool, string) {
	switch sig.DetectedProtein {
	case "pork":
		return true, "detected protein: pork"
	case "ambiguous_red_meat":
		return true, "detected protein: unidentified red meat"
	}
	return false, ""
}

func genericLabelTrapRule(sig HalalSignal) (bool, string) {
	if sig.Confidence >= genericLabelTrapConfidence {
		return false, ""
	}
	if knownSafeProteins[sig.DetectedProtein] {
		return false, ""
	}
	if !containsAnyLabel(sig.Name, vagueDishLabels) {
		return false, ""
	}
	if !categoryIsAmbiguous(sig.Category) {
		return false, ""
	}
	return true, fmt.Sprintf("vague dish label %q with unverified protein in an ambiguous-protein cuisine", sig.Name)
}

func containsAnyLabel(name string, labels []string) bool {
	for _, l := range labels {
		if strings.Contains(name, l) {
			return true
		}
	}
	return false
}

func categoryIsAmbiguous(category string) bool {
	for _, c := range ambiguousProteinCategories {
		if category == c || (c != "" && strings.Contains(category, c)) {
			return true
		}
	}
	return false
}
