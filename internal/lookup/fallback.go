package lookup

import "github.com/sells-group/quote-wizard/internal/model"

// fallbacks are served when a category cannot be loaded. Coverage amounts
// have none: the quotation form accepts a free amount instead.
var fallbacks = map[model.LookupCategory][]model.LookupItem{
	model.LookupPolicyTypes: {
		{ID: "1", Code: "life", Name: "تأمين على الحياة", NameEn: "Life insurance"},
		{ID: "2", Code: "health", Name: "تأمين صحي", NameEn: "Health insurance"},
		{ID: "3", Code: "accident", Name: "تأمين ضد الحوادث", NameEn: "Accident insurance"},
	},
	model.LookupPolicyDurations: {
		{ID: "1", Code: "1", Name: "سنة واحدة", NameEn: "1 year"},
		{ID: "2", Code: "2", Name: "سنتان", NameEn: "2 years"},
		{ID: "3", Code: "3", Name: "3 سنوات", NameEn: "3 years"},
		{ID: "5", Code: "5", Name: "5 سنوات", NameEn: "5 years"},
	},
	model.LookupBeneficiaryRelations: {
		{ID: "1", Code: "spouse", Name: "زوج/زوجة", NameEn: "Spouse"},
		{ID: "2", Code: "child", Name: "ابن/ابنة", NameEn: "Child"},
		{ID: "3", Code: "parent", Name: "والد/والدة", NameEn: "Parent"},
		{ID: "4", Code: "sibling", Name: "أخ/أخت", NameEn: "Sibling"},
	},
	model.LookupPaymentMethods: {
		{ID: "1", Code: "balance", Name: "الرصيد", NameEn: "Balance"},
		{ID: "2", Code: "card", Name: "البطاقة", NameEn: "Card"},
		{ID: "3", Code: "agreement", Name: "الدفع التلقائي", NameEn: "Automatic payment"},
	},
}

// Fallback returns a copy of the hardcoded items for category, or nil.
func Fallback(category model.LookupCategory) []model.LookupItem {
	items, ok := fallbacks[category]
	if !ok {
		return nil
	}
	return append([]model.LookupItem(nil), items...)
}
