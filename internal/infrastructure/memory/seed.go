package memory

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/accounting-setup/internal/domain/entity"
)

// Seed datos iniciales del almacén en memoria (formato YAML), útil para simular una
// ejecución sin base de datos.
type Seed struct {
	Companies  []SeedCompany  `yaml:"companies"`
	Accounts   []SeedAccount  `yaml:"accounts"`
	Journals   []SeedJournal  `yaml:"journals"`
	Categories []SeedCategory `yaml:"categories"`
	Partners   []SeedPartner  `yaml:"partners"`
}

// SeedCompany empresa inicial.
type SeedCompany struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// SeedAccount cuenta inicial.
type SeedAccount struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// SeedJournal diario inicial.
type SeedJournal struct {
	Company string `yaml:"company"`
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
}

// SeedCategory categoría inicial; las propiedades aplican a Company.
type SeedCategory struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Parent      string `yaml:"parent"`
	Company     string `yaml:"company"`
	CostMethod  string `yaml:"cost_method"`
	Valuation   string `yaml:"valuation"`
	ExpenseCode string `yaml:"expense_code"`
}

// SeedPartner tercero inicial; las cuentas AR/AP aplican a Company.
type SeedPartner struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Parent         string `yaml:"parent"`
	Company        string `yaml:"company"`
	ReceivableCode string `yaml:"receivable_code"`
	PayableCode    string `yaml:"payable_code"`
}

// LoadSeed lee un Seed en YAML y lo aplica sobre un almacén nuevo.
func LoadSeed(r io.Reader) (*Store, error) {
	var seed Seed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	s := NewStore()
	if err := s.Apply(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply carga el Seed en el almacén.
func (s *Store) Apply(seed Seed) error {
	for _, c := range seed.Companies {
		s.AddCompany(c.ID, c.Name)
	}
	for _, a := range seed.Accounts {
		s.AddAccount(a.Code, a.Name, a.Type)
	}
	for _, j := range seed.Journals {
		s.AddJournal(j.Company, j.Code, j.Name, j.Type)
	}
	for _, c := range seed.Categories {
		s.AddCategory(c.ID, c.Name, c.Parent)
		if c.Company == "" {
			continue
		}
		props := entity.ProductCategory{CostMethod: c.CostMethod, Valuation: c.Valuation}
		if c.ExpenseCode != "" {
			acc := s.AccountByCode(c.ExpenseCode)
			if acc == nil {
				return fmt.Errorf("seed: categoría %s: cuenta %s no existe", c.ID, c.ExpenseCode)
			}
			props.ExpenseAccountID = acc.ID
		}
		s.SetCategoryProperties(c.Company, c.ID, props)
	}
	for _, p := range seed.Partners {
		s.AddPartner(p.ID, p.Name, p.Parent)
		var accounts entity.PartnerAccounts
		refs := []struct {
			code string
			dst  *string
		}{
			{p.ReceivableCode, &accounts.ReceivableAccountID},
			{p.PayableCode, &accounts.PayableAccountID},
		}
		for _, ref := range refs {
			if ref.code == "" {
				continue
			}
			acc := s.AccountByCode(ref.code)
			if acc == nil {
				return fmt.Errorf("seed: tercero %s: cuenta %s no existe", p.ID, ref.code)
			}
			*ref.dst = acc.ID
		}
		if p.Company != "" {
			s.SetPartnerAccounts(p.Company, p.ID, accounts)
		}
	}
	return nil
}

// AddCompany registra una empresa.
func (s *Store) AddCompany(id, name string) {
	defer s.lock()()
	now := time.Now()
	s.state.companies[id] = entity.Company{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
}

// AddAccount registra una cuenta y devuelve su ID.
func (s *Store) AddAccount(code, name, accountType string) string {
	defer s.lock()()
	now := time.Now()
	id := uuid.New().String()
	s.state.accounts[id] = entity.Account{
		ID: id, Code: code, Name: name, Type: accountType,
		InternalGroup: internalGroup(accountType), CreatedAt: now, UpdatedAt: now,
	}
	return id
}

// AddJournal registra un diario y devuelve su ID.
func (s *Store) AddJournal(companyID, code, name, journalType string) string {
	defer s.lock()()
	now := time.Now()
	id := uuid.New().String()
	s.state.journals[id] = entity.Journal{
		ID: id, CompanyID: companyID, Code: code, Name: name, Type: journalType,
		CreatedAt: now, UpdatedAt: now,
	}
	return id
}

// AddCategory registra una categoría sin propiedades.
func (s *Store) AddCategory(id, name, parentID string) {
	defer s.lock()()
	s.state.categories[id] = entity.ProductCategory{ID: id, Name: name, ParentID: parentID}
}

// SetCategoryProperties fija las propiedades de valoración de una categoría en una empresa.
func (s *Store) SetCategoryProperties(companyID, categoryID string, props entity.ProductCategory) {
	defer s.lock()()
	props.ID, props.Name, props.ParentID = "", "", ""
	s.state.categoryProps[propKey{companyID, categoryID}] = props
}

// AddPartner registra un tercero.
func (s *Store) AddPartner(id, name, parentID string) {
	defer s.lock()()
	now := time.Now()
	s.state.partners[id] = entity.Partner{ID: id, Name: name, ParentID: parentID, CreatedAt: now, UpdatedAt: now}
}

// SetPartnerAccounts fija las cuentas AR/AP de un tercero en una empresa.
func (s *Store) SetPartnerAccounts(companyID, partnerID string, accounts entity.PartnerAccounts) {
	defer s.lock()()
	s.state.partnerProps[propKey{companyID, partnerID}] = accounts
}

// AccountByCode devuelve la cuenta con el código dado o nil.
func (s *Store) AccountByCode(code string) *entity.Account {
	defer s.lock()()
	for _, id := range sortedKeys(s.state.accounts) {
		if a := s.state.accounts[id]; a.Code == code {
			return &a
		}
	}
	return nil
}

// Accounts devuelve todas las cuentas ordenadas por código.
func (s *Store) Accounts() []entity.Account {
	defer s.lock()()
	list := make([]entity.Account, 0, len(s.state.accounts))
	for _, a := range s.state.accounts {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list
}

// Journals devuelve todos los diarios ordenados por código.
func (s *Store) Journals() []entity.Journal {
	defer s.lock()()
	list := make([]entity.Journal, 0, len(s.state.journals))
	for _, j := range s.state.journals {
		list = append(list, j)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list
}

// Category devuelve la categoría con sus propiedades en la empresa, o nil.
func (s *Store) Category(companyID, id string) *entity.ProductCategory {
	defer s.lock()()
	base, ok := s.state.categories[id]
	if !ok {
		return nil
	}
	return (&CategoryRepo{repoBase{store: s, state: &s.state, lock: noLock}}).resolve(companyID, base)
}

// PartnerAccounts devuelve las cuentas AR/AP de un tercero en la empresa.
func (s *Store) PartnerAccounts(companyID, partnerID string) entity.PartnerAccounts {
	defer s.lock()()
	return s.state.partnerProps[propKey{companyID, partnerID}]
}

// DefaultValues devuelve los valores por defecto de la empresa, ordenados por campo.
func (s *Store) DefaultValues(companyID string) []entity.DefaultValue {
	defer s.lock()()
	var list []entity.DefaultValue
	for _, dv := range s.state.defaults {
		if dv.CompanyID == companyID {
			list = append(list, dv)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Field < list[j].Field })
	return list
}

func internalGroup(accountType string) string {
	switch {
	case accountType == entity.AccountTypeOffBalance:
		return entity.InternalGroupOffBalance
	case strings.HasPrefix(accountType, "asset"):
		return entity.InternalGroupAsset
	case strings.HasPrefix(accountType, "liability"):
		return entity.InternalGroupLiability
	case strings.HasPrefix(accountType, "equity"):
		return entity.InternalGroupEquity
	case strings.HasPrefix(accountType, "income"):
		return entity.InternalGroupIncome
	case strings.HasPrefix(accountType, "expense"):
		return entity.InternalGroupExpense
	}
	return ""
}
