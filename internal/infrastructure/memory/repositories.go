package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/accounting-setup/internal/application/setup"
	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
	"github.com/jhoicas/accounting-setup/internal/domain/repository"
)

var (
	_ repository.AccountRepository      = (*AccountRepo)(nil)
	_ repository.JournalRepository      = (*JournalRepo)(nil)
	_ repository.CategoryRepository     = (*CategoryRepo)(nil)
	_ repository.PartnerRepository      = (*PartnerRepo)(nil)
	_ repository.DefaultValueRepository = (*DefaultValueRepo)(nil)
	_ repository.CompanyRepository      = (*CompanyRepo)(nil)
)

// ── Accounts ──────────────────────────────────────────────────────────────────

// AccountRepo implementación en memoria de AccountRepository.
type AccountRepo struct{ repoBase }

func (r *AccountRepo) GetByID(_ context.Context, id string) (*entity.Account, error) {
	defer r.lock()()
	a, ok := r.state.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AccountRepo) GetByCode(ctx context.Context, code string) (*entity.Account, error) {
	return r.GetByCodeAndTypes(ctx, code, nil)
}

func (r *AccountRepo) GetByCodeAndTypes(_ context.Context, code string, types []string) (*entity.Account, error) {
	defer r.lock()()
	for _, id := range sortedKeys(r.state.accounts) {
		a := r.state.accounts[id]
		if a.Code != code {
			continue
		}
		if len(types) > 0 && !contains(types, a.Type) {
			continue
		}
		return &a, nil
	}
	return nil, nil
}

func (r *AccountRepo) Create(_ context.Context, account *entity.Account) error {
	defer r.lock()()
	if err := r.store.fault(OpCreateAccount, account.Code); err != nil {
		return err
	}
	for _, a := range r.state.accounts {
		if a.Code == account.Code {
			return domain.ErrDuplicate
		}
	}
	r.state.accounts[account.ID] = *account
	return nil
}

// ── Journals ──────────────────────────────────────────────────────────────────

// JournalRepo implementación en memoria de JournalRepository.
type JournalRepo struct{ repoBase }

func (r *JournalRepo) GetByCompanyAndCode(_ context.Context, companyID, code string) (*entity.Journal, error) {
	defer r.lock()()
	for _, id := range sortedKeys(r.state.journals) {
		j := r.state.journals[id]
		if j.CompanyID == companyID && j.Code == code {
			return &j, nil
		}
	}
	return nil, nil
}

func (r *JournalRepo) GetByCompanyAndName(_ context.Context, companyID, name string) (*entity.Journal, error) {
	defer r.lock()()
	for _, id := range sortedKeys(r.state.journals) {
		j := r.state.journals[id]
		if j.CompanyID == companyID && setup.NormalizeName(j.Name) == name {
			return &j, nil
		}
	}
	return nil, nil
}

func (r *JournalRepo) Create(_ context.Context, journal *entity.Journal) error {
	defer r.lock()()
	if err := r.store.fault(OpCreateJournal, journal.Code); err != nil {
		return err
	}
	for _, j := range r.state.journals {
		if j.CompanyID == journal.CompanyID && j.Code == journal.Code {
			return domain.ErrDuplicate
		}
	}
	r.state.journals[journal.ID] = *journal
	return nil
}

// ── Categories ────────────────────────────────────────────────────────────────

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct{ repoBase }

// resolve combina la categoría con sus propiedades en la empresa.
func (r *CategoryRepo) resolve(companyID string, base entity.ProductCategory) *entity.ProductCategory {
	out := base
	if props, ok := r.state.categoryProps[propKey{companyID, base.ID}]; ok {
		out.CostMethod = props.CostMethod
		out.Valuation = props.Valuation
		out.StockJournalID = props.StockJournalID
		out.ValuationAccountID = props.ValuationAccountID
		out.InputAccountID = props.InputAccountID
		out.OutputAccountID = props.OutputAccountID
		out.ExpenseAccountID = props.ExpenseAccountID
	}
	return &out
}

func (r *CategoryRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.ProductCategory, error) {
	defer r.lock()()
	list := make([]*entity.ProductCategory, 0, len(r.state.categories))
	for _, id := range sortedKeys(r.state.categories) {
		list = append(list, r.resolve(companyID, r.state.categories[id]))
	}
	return list, nil
}

func (r *CategoryRepo) ListByValuation(ctx context.Context, companyID, valuation string) ([]*entity.ProductCategory, error) {
	all, err := r.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	var list []*entity.ProductCategory
	for _, c := range all {
		if c.Valuation == valuation {
			list = append(list, c)
		}
	}
	return list, nil
}

func (r *CategoryRepo) UpdateValuation(_ context.Context, companyID, categoryID string, s entity.ValuationSettings) error {
	defer r.lock()()
	if _, ok := r.state.categories[categoryID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.store.fault(OpUpdateValuation, categoryID); err != nil {
		return err
	}
	key := propKey{companyID, categoryID}
	props := r.state.categoryProps[key]
	props.CostMethod = s.CostMethod
	props.Valuation = s.Valuation
	props.StockJournalID = s.StockJournalID
	props.ValuationAccountID = s.ValuationAccountID
	props.InputAccountID = s.InputAccountID
	props.OutputAccountID = s.OutputAccountID
	r.state.categoryProps[key] = props
	return nil
}

func (r *CategoryRepo) SetExpenseAccount(_ context.Context, companyID, categoryID, accountID string) error {
	defer r.lock()()
	if _, ok := r.state.categories[categoryID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.store.fault(OpSetExpenseAccount, categoryID); err != nil {
		return err
	}
	key := propKey{companyID, categoryID}
	props := r.state.categoryProps[key]
	props.ExpenseAccountID = accountID
	r.state.categoryProps[key] = props
	return nil
}

// ── Partners ──────────────────────────────────────────────────────────────────

// PartnerRepo implementación en memoria de PartnerRepository.
type PartnerRepo struct{ repoBase }

func (r *PartnerRepo) Create(_ context.Context, partner *entity.Partner) error {
	defer r.lock()()
	if _, ok := r.state.partners[partner.ID]; ok {
		return domain.ErrDuplicate
	}
	r.state.partners[partner.ID] = *partner
	return nil
}

func (r *PartnerRepo) GetByID(_ context.Context, id string) (*entity.Partner, error) {
	defer r.lock()()
	p, ok := r.state.partners[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PartnerRepo) ListTopLevel(_ context.Context) ([]*entity.Partner, error) {
	defer r.lock()()
	var list []*entity.Partner
	for _, id := range sortedKeys(r.state.partners) {
		p := r.state.partners[id]
		if p.ParentID == "" {
			list = append(list, &p)
		}
	}
	return list, nil
}

func (r *PartnerRepo) AccountProperties(_ context.Context, companyID, partnerID string) (entity.PartnerAccounts, error) {
	defer r.lock()()
	if err := r.store.fault(OpReadPartner, partnerID); err != nil {
		return entity.PartnerAccounts{}, err
	}
	if _, ok := r.state.partners[partnerID]; !ok {
		return entity.PartnerAccounts{}, domain.ErrNotFound
	}
	return r.state.partnerProps[propKey{companyID, partnerID}], nil
}

func (r *PartnerRepo) SetAccountProperties(_ context.Context, companyID, partnerID string, accounts entity.PartnerAccounts) error {
	defer r.lock()()
	if _, ok := r.state.partners[partnerID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.store.fault(OpWritePartner, partnerID); err != nil {
		return err
	}
	key := propKey{companyID, partnerID}
	props := r.state.partnerProps[key]
	if accounts.ReceivableAccountID != "" {
		props.ReceivableAccountID = accounts.ReceivableAccountID
	}
	if accounts.PayableAccountID != "" {
		props.PayableAccountID = accounts.PayableAccountID
	}
	r.state.partnerProps[key] = props
	return nil
}

// ── Default values ────────────────────────────────────────────────────────────

// DefaultValueRepo implementación en memoria de DefaultValueRepository.
type DefaultValueRepo struct{ repoBase }

func (r *DefaultValueRepo) Get(_ context.Context, model, field, companyID string) (*entity.DefaultValue, error) {
	defer r.lock()()
	for _, id := range sortedKeys(r.state.defaults) {
		dv := r.state.defaults[id]
		if dv.Model == model && dv.Field == field && dv.CompanyID == companyID {
			return &dv, nil
		}
	}
	return nil, nil
}

func (r *DefaultValueRepo) ListByModel(_ context.Context, model, companyID string) ([]*entity.DefaultValue, error) {
	defer r.lock()()
	var list []*entity.DefaultValue
	for _, id := range sortedKeys(r.state.defaults) {
		dv := r.state.defaults[id]
		if dv.Model == model && dv.CompanyID == companyID {
			list = append(list, &dv)
		}
	}
	return list, nil
}

func (r *DefaultValueRepo) Set(_ context.Context, value *entity.DefaultValue) error {
	defer r.lock()()
	if err := r.store.fault(OpSetDefault, value.Field); err != nil {
		return err
	}
	for id, dv := range r.state.defaults {
		if dv.Model == value.Model && dv.Field == value.Field && dv.CompanyID == value.CompanyID {
			delete(r.state.defaults, id)
		}
	}
	r.state.defaults[value.ID] = *value
	return nil
}

func (r *DefaultValueRepo) DeleteFields(_ context.Context, model string, fields []string, companyID string) (int64, error) {
	defer r.lock()()
	var n int64
	for id, dv := range r.state.defaults {
		if dv.Model == model && dv.CompanyID == companyID && contains(fields, dv.Field) {
			delete(r.state.defaults, id)
			n++
		}
	}
	return n, nil
}

// ── Companies ─────────────────────────────────────────────────────────────────

// CompanyRepo implementación en memoria de CompanyRepository.
type CompanyRepo struct{ repoBase }

func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	defer r.lock()()
	if err := r.store.fault(OpReadCompany, id); err != nil {
		return nil, err
	}
	c, ok := r.state.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func contains(list []string, s string) bool {
	return slices.Contains(list, s)
}
