package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/quote-wizard/internal/i18n"
	"github.com/sells-group/quote-wizard/internal/model"
	"github.com/sells-group/quote-wizard/internal/wizard"
)

// stepErrors are shown as a page-level message.
var stepErrors = []error{
	wizard.ErrShareExceeded,
	wizard.ErrNoBeneficiaries,
	wizard.ErrSharesIncomplete,
	wizard.ErrNoQuotation,
	wizard.ErrNoPolicy,
	wizard.ErrNoPaymentMethod,
}

// applyError maps a failed submission onto the page. Store action failures
// are already in the state and need no extra handling.
func (s *Server) applyError(pd *pageData, err error) {
	var fe wizard.FieldErrors
	if errors.As(err, &fe) {
		pd.Errors = fe.Translate(s.loc)
		return
	}
	for _, target := range stepErrors {
		if errors.Is(err, target) {
			pd.Flash = s.loc.T(target.Error())
			return
		}
	}
}

func seeOther(w http.ResponseWriter, r *http.Request, step wizard.Step) {
	http.Redirect(w, r, step.Path(), http.StatusSeeOther)
}

// decodeForm reads the submitted body into dst.
func decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return eris.Wrap(err, "web: parse form")
	}
	return wizard.Decode(r.PostForm, dst)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(storeFrom(r).Snapshot())
}

func (s *Server) postReset(w http.ResponseWriter, r *http.Request) {
	storeFrom(r).Reset()
	if err := s.sessions.Discard(r.Context(), sessionIDFrom(r)); err != nil {
		zap.L().Warn("reset: drop saved session", zap.Error(err))
	}
	seeOther(w, r, wizard.StepQuotation)
}

// Quotation step

func (s *Server) quotationPage(r *http.Request, form wizard.QuotationForm) *pageData {
	pd := s.pages.data(wizard.StepQuotation, storeFrom(r).Snapshot(), s.catalog.Load(r.Context()))
	pd.Quotation = form
	pd.Premium = model.PremiumFor(form.Coverage, form.Duration)
	return pd
}

func (s *Server) getQuotation(w http.ResponseWriter, r *http.Request) {
	form := wizard.DefaultQuotationForm()
	if q := storeFrom(r).Snapshot().Quotation; q != nil {
		form = wizard.QuotationForm{PolicyType: q.PolicyType, Coverage: q.Coverage, Duration: q.Duration}
	}
	s.pages.render(w, "quotation", http.StatusOK, s.quotationPage(r, form))
}

func (s *Server) postQuotation(w http.ResponseWriter, r *http.Request) {
	var form wizard.QuotationForm
	err := decodeForm(r, &form)
	if err == nil {
		var step wizard.Step
		if step, err = wizard.SubmitQuotation(r.Context(), storeFrom(r), form, s.now()); err == nil {
			seeOther(w, r, step)
			return
		}
	}
	pd := s.quotationPage(r, form)
	s.applyError(pd, err)
	s.pages.render(w, "quotation", http.StatusUnprocessableEntity, pd)
}

// Beneficiaries step

func (s *Server) beneficiariesPage(r *http.Request, form wizard.BeneficiaryForm) *pageData {
	pd := s.pages.data(wizard.StepBeneficiaries, storeFrom(r).Snapshot(), s.catalog.Load(r.Context()))
	pd.Beneficiary = form
	return pd
}

func (s *Server) getBeneficiaries(w http.ResponseWriter, r *http.Request) {
	s.pages.render(w, "beneficiaries", http.StatusOK, s.beneficiariesPage(r, wizard.DefaultBeneficiaryForm()))
}

func (s *Server) postBeneficiary(w http.ResponseWriter, r *http.Request) {
	var form wizard.BeneficiaryForm
	err := decodeForm(r, &form)
	if err == nil {
		_, err = wizard.AddBeneficiary(storeFrom(r), form)
	}
	if err != nil {
		pd := s.beneficiariesPage(r, form)
		s.applyError(pd, err)
		s.pages.render(w, "beneficiaries", http.StatusUnprocessableEntity, pd)
		return
	}
	seeOther(w, r, wizard.StepBeneficiaries)
}

func (s *Server) postRemoveBeneficiary(w http.ResponseWriter, r *http.Request) {
	storeFrom(r).RemoveBeneficiary(chi.URLParam(r, "id"))
	seeOther(w, r, wizard.StepBeneficiaries)
}

func (s *Server) postContinue(w http.ResponseWriter, r *http.Request) {
	step, err := wizard.ContinueFromBeneficiaries(r.Context(), storeFrom(r))
	if err == nil || errors.Is(err, wizard.ErrNoQuotation) {
		seeOther(w, r, step)
		return
	}
	pd := s.beneficiariesPage(r, wizard.DefaultBeneficiaryForm())
	s.applyError(pd, err)
	s.pages.render(w, "beneficiaries", http.StatusUnprocessableEntity, pd)
}

// Payment step

func (s *Server) getPayment(w http.ResponseWriter, r *http.Request) {
	pd := s.pages.data(wizard.StepPayment, storeFrom(r).Snapshot(), s.catalog.Load(r.Context()))
	s.pages.render(w, "payment", http.StatusOK, pd)
}

func (s *Server) postPayment(w http.ResponseWriter, r *http.Request) {
	set := s.catalog.Load(r.Context())
	var form wizard.PaymentForm
	err := decodeForm(r, &form)
	if err == nil {
		var step wizard.Step
		if step, err = wizard.SubmitPayment(r.Context(), storeFrom(r), form, set.PaymentMethods()); err == nil {
			seeOther(w, r, step)
			return
		}
	}
	pd := s.pages.data(wizard.StepPayment, storeFrom(r).Snapshot(), set)
	pd.MethodID = form.MethodID
	s.applyError(pd, err)
	s.pages.render(w, "payment", http.StatusUnprocessableEntity, pd)
}

// Result step

func resultFrom(st wizard.State) *resultView {
	if st.PolicyResult == nil && st.PaymentResponse == nil {
		return nil
	}
	v := &resultView{}
	if pr := st.PolicyResult; pr != nil {
		v.Success = pr.Payment.Succeeded()
		v.PolicyNumber = pr.Policy.PolicyNumber
		v.PolicyType = pr.Policy.Quotation.PolicyType
		v.Coverage = pr.Policy.Quotation.Coverage
		v.Premium = pr.Policy.Quotation.Premium
		v.CreatedAt = pr.Policy.CreatedAt
		v.TransactionID = pr.Payment.TransactionID
	} else {
		v.Success = st.PaymentResponse.Succeeded()
		v.TransactionID = st.PaymentResponse.TransactionID
	}
	if q := st.Quotation; q != nil && v.Coverage == 0 {
		v.PolicyType = q.PolicyType
		v.Coverage = q.Coverage
		v.Premium = q.Premium
	}
	if v.CreatedAt == "" && st.CurrentPolicy != nil {
		v.CreatedAt = st.CurrentPolicy.CreatedAt
	}
	return v
}

func (s *Server) resultPage(r *http.Request) *pageData {
	st := storeFrom(r).Snapshot()
	pd := s.pages.data(wizard.StepResult, st, nil)
	pd.Result = resultFrom(st)
	return pd
}

func (s *Server) getResult(w http.ResponseWriter, r *http.Request) {
	// A failed fetch is recorded in the state and shown on the page.
	_ = wizard.EnterResult(r.Context(), storeFrom(r))
	s.pages.render(w, "result", http.StatusOK, s.resultPage(r))
}

func (s *Server) getDocument(w http.ResponseWriter, r *http.Request) {
	if pr := storeFrom(r).Snapshot().PolicyResult; pr != nil && pr.DocumentURL != "" {
		http.Redirect(w, r, pr.DocumentURL, http.StatusFound)
		return
	}
	pd := s.resultPage(r)
	pd.Flash = s.loc.T(i18n.MsgDocumentUnavailable)
	s.pages.render(w, "result", http.StatusNotFound, pd)
}
