package i18n

// Arabic texts of page labels. Templates use the English label as key.
var arabicLabels = map[string]string{
	"Insurance quotation": "عرض سعر التأمين",
	"Quotation":           "عرض السعر",
	"Beneficiaries":       "المستفيدون",
	"Payment":             "الدفع",
	"Result":              "النتيجة",
	"Insurance type":      "نوع التأمين",
	"Choose":              "اختر",
	"Coverage":            "مبلغ التغطية",
	"Duration":            "المدة",
	"Premium":             "القسط",
	"years":               "سنوات",
	"Next":                "التالي",
	"Back":                "السابق",
	"Name":                "الاسم",
	"Relation":            "صلة القرابة",
	"ID number":           "رقم الهوية",
	"Date of birth":       "تاريخ الميلاد",
	"Gender":              "الجنس",
	"Male":                "ذكر",
	"Female":              "أنثى",
	"Percentage":          "النسبة",
	"Total":               "الإجمالي",
	"Add beneficiary":     "إضافة مستفيد",
	"Remove":              "حذف",
	"Continue":            "متابعة",
	"Payment method":      "طريقة الدفع",
	"Pay now":             "ادفع الآن",
	"Payment successful":  "تم الدفع بنجاح",
	"Payment failed":      "فشل الدفع",
	"Policy number":       "رقم الوثيقة",
	"Created":             "تاريخ الإنشاء",
	"Transaction ID":      "رقم العملية",
	"Download document":   "تحميل الوثيقة",
	"Start over":          "البدء من جديد",
	"Try again":           "حاول مرة أخرى",
	"New quotation":       "عرض سعر جديد",
	"Loading result":      "جاري تحميل النتيجة",
}

func init() {
	for k, v := range arabicLabels {
		arabic[k] = v
	}
}
