package account

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// errAny marks table rows that expect some error without a specific sentinel.
var errAny = errors.New("any error")

func TestCreateParamsValidate(t *testing.T) {
	valid := CreateParams{
		UserID:      "user-1",
		Name:        "Main Checking",
		AccountType: "Checking",
		Balance:     decimal.NewFromInt(100),
	}

	tests := []struct {
		name    string
		mutate  func(p *CreateParams)
		wantErr error
	}{
		{
			name:   "valid params",
			mutate: func(p *CreateParams) {},
		},
		{
			name:   "zero balance is allowed",
			mutate: func(p *CreateParams) { p.Balance = decimal.Zero },
		},
		{
			name:    "missing user id",
			mutate:  func(p *CreateParams) { p.UserID = "" },
			wantErr: errAny,
		},
		{
			name:    "missing name",
			mutate:  func(p *CreateParams) { p.Name = "" },
			wantErr: errAny,
		},
		{
			name:    "unknown account type",
			mutate:  func(p *CreateParams) { p.AccountType = "Offshore" },
			wantErr: ErrInvalidAccountType,
		},
		{
			name:    "lowercase account type is rejected",
			mutate:  func(p *CreateParams) { p.AccountType = "checking" },
			wantErr: ErrInvalidAccountType,
		},
		{
			name:    "negative balance",
			mutate:  func(p *CreateParams) { p.Balance = decimal.NewFromInt(-1) },
			wantErr: ErrNegativeBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
			case tt.wantErr == errAny:
				assert.Error(t, err)
			default:
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestUpdateParamsValidate(t *testing.T) {
	name := "Renamed"
	empty := ""
	accountType := "Savings"
	badType := "Crypto"
	balance := decimal.NewFromInt(10)
	negative := decimal.NewFromInt(-10)

	tests := []struct {
		name    string
		params  UpdateParams
		wantErr error
	}{
		{
			name:   "rename only",
			params: UpdateParams{Name: &name},
		},
		{
			name:   "all fields",
			params: UpdateParams{Name: &name, AccountType: &accountType, Balance: &balance},
		},
		{
			name:    "no fields set",
			params:  UpdateParams{},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty name",
			params:  UpdateParams{Name: &empty},
			wantErr: errAny,
		},
		{
			name:    "invalid account type",
			params:  UpdateParams{AccountType: &badType},
			wantErr: ErrInvalidAccountType,
		},
		{
			name:    "negative balance",
			params:  UpdateParams{Balance: &negative},
			wantErr: ErrNegativeBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
			case tt.wantErr == errAny:
				assert.Error(t, err)
			default:
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIsValidAccountType(t *testing.T) {
	for _, typ := range []string{"Checking", "Savings", "Credit", "Investment"} {
		assert.True(t, IsValidAccountType(typ), typ)
	}
	for _, typ := range []string{"", "checking", "SAVINGS", "Cash"} {
		assert.False(t, IsValidAccountType(typ), typ)
	}
}
