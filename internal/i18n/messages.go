package i18n

// Store action failures.
const (
	MsgCreateQuotationFailed = "Failed to create the quotation"
	MsgGetQuotationFailed    = "Failed to load the quotation"
	MsgCreatePolicyFailed    = "Failed to create the policy"
	MsgGetPolicyFailed       = "Failed to load the policy"
	MsgGetPoliciesFailed     = "Failed to load your policies"
	MsgPaymentFailed         = "Failed to process the payment"
	MsgPolicyResultFailed    = "Failed to load the policy result"
)

// Form field validation.
const (
	MsgPolicyTypeRequired  = "Please choose an insurance type"
	MsgCoverageMin         = "Coverage must be at least 1000"
	MsgDurationMin         = "Duration must be at least one year"
	MsgNameMin             = "Name must be at least 2 characters"
	MsgRelationRequired    = "Please choose a relation"
	MsgIDNumberInvalid     = "Invalid ID number"
	MsgBirthDateRequired   = "Please enter a date of birth"
	MsgGenderRequired      = "Please choose a gender"
	MsgPercentageRange     = "Percentage must be between 1 and 100"
	MsgPaymentMethodNeeded = "Please choose a payment method"
	MsgInvalidValue        = "Invalid value"
)

// Step transitions.
const (
	MsgShareExceeded       = "Total percentage cannot exceed 100%"
	MsgNoBeneficiaries     = "Please add at least one beneficiary"
	MsgSharesIncomplete    = "Total percentage must equal 100%"
	MsgNoQuotation         = "No quotation found, please return to the quotation step"
	MsgNoPolicy            = "No policy found, please complete the beneficiaries step"
	MsgDocumentUnavailable = "The document is not available yet"
	MsgLookupDegraded      = "Some options could not be loaded; defaults are shown"
)

var arabic = map[string]string{
	MsgCreateQuotationFailed: "فشل إنشاء عرض السعر",
	MsgGetQuotationFailed:    "فشل جلب عرض السعر",
	MsgCreatePolicyFailed:    "فشل إنشاء الوثيقة",
	MsgGetPolicyFailed:       "فشل جلب الوثيقة",
	MsgGetPoliciesFailed:     "فشل جلب الوثائق",
	MsgPaymentFailed:         "فشل معالجة الدفع",
	MsgPolicyResultFailed:    "فشل جلب نتيجة الوثيقة",

	MsgPolicyTypeRequired:  "يرجى اختيار نوع التأمين",
	MsgCoverageMin:         "يجب أن يكون المبلغ على الأقل 1000",
	MsgDurationMin:         "يجب أن تكون المدة على الأقل سنة واحدة",
	MsgNameMin:             "يجب أن يكون الاسم على الأقل حرفين",
	MsgRelationRequired:    "يرجى اختيار صلة القرابة",
	MsgIDNumberInvalid:     "رقم الهوية غير صحيح",
	MsgBirthDateRequired:   "يرجى إدخال تاريخ الميلاد",
	MsgGenderRequired:      "يرجى اختيار الجنس",
	MsgPercentageRange:     "يجب أن تكون النسبة بين 1 و 100",
	MsgPaymentMethodNeeded: "يرجى اختيار طريقة الدفع",
	MsgInvalidValue:        "قيمة غير صحيحة",

	MsgShareExceeded:       "إجمالي النسب المئوية لا يمكن أن يتجاوز 100%",
	MsgNoBeneficiaries:     "يرجى إضافة مستفيد واحد على الأقل",
	MsgSharesIncomplete:    "إجمالي النسب المئوية يجب أن يكون 100%",
	MsgNoQuotation:         "لا يوجد عرض سعر، يرجى الرجوع إلى صفحة عرض السعر",
	MsgNoPolicy:            "لا توجد وثيقة، يرجى إكمال خطوة المستفيدين",
	MsgDocumentUnavailable: "الوثيقة غير متاحة حالياً",
	MsgLookupDegraded:      "تعذر تحميل بعض الخيارات، يتم عرض القيم الافتراضية",
}
