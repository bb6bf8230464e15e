package normalize

import (
	"errors"
	"testing"

	"github.com/mmynk/orderdash/internal/models"
)

func TestOrdersJoinsCollections(t *testing.T) {
	orders := []models.RawOrder{
		{ID: 1, UserID: 7, TransactionID: "tx-1", Total: "10.50", OrderCountry: "BR", OrderIP: "10.0.0.1"},
	}
	users := []models.RawUser{
		{ID: 7, FirstName: "Ada", LastName: "Lovelace", Gender: "Female", Birthday: "86400", CompanyID: 3},
	}
	companies := []models.RawCompany{
		{ID: 3, Title: "Analytical Engines", Sector: "Compute"},
	}

	got, err := Orders(orders, users, companies)
	if err != nil {
		t.Fatalf("Orders() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Orders() returned %d orders, want 1", len(got))
	}

	order := got[0]
	if order.User.FirstName != "Ada" || order.User.LastName != "Lovelace" {
		t.Errorf("user not joined: %+v", order.User)
	}
	if order.User.Company == nil || order.User.Company.Title != "Analytical Engines" {
		t.Errorf("company not resolved: %+v", order.User.Company)
	}
	if order.User.Birthday != "02/01/1970" {
		t.Errorf("birthday = %q, want 02/01/1970", order.User.Birthday)
	}
	if order.User.ShowInfo {
		t.Error("ShowInfo must default to false")
	}
	if order.Country != "BR" || order.IP != "10.0.0.1" {
		t.Errorf("order fields not carried over: %+v", order)
	}
}

func TestOrdersCompanyResolution(t *testing.T) {
	users := []models.RawUser{
		{ID: 1, FirstName: "NoCompany", CompanyID: 0},
		{ID: 2, FirstName: "DanglingCompany", CompanyID: 99},
	}
	orders := []models.RawOrder{
		{ID: 10, UserID: 1},
		{ID: 11, UserID: 2},
	}

	got, err := Orders(orders, users, nil)
	if err != nil {
		t.Fatalf("Orders() error = %v", err)
	}
	for _, order := range got {
		if order.User.Company != nil {
			t.Errorf("order %d: company = %+v, want nil", order.ID, order.User.Company)
		}
	}
}

func TestOrdersMissingUserFailsFast(t *testing.T) {
	orders := []models.RawOrder{{ID: 1, UserID: 404}}

	_, err := Orders(orders, nil, nil)
	if !errors.Is(err, ErrMissingReference) {
		t.Fatalf("Orders() error = %v, want ErrMissingReference", err)
	}
}

func TestOrdersEmbedsIndependentUserCopies(t *testing.T) {
	orders := []models.RawOrder{
		{ID: 1, UserID: 7},
		{ID: 2, UserID: 7},
	}
	users := []models.RawUser{{ID: 7, FirstName: "Shared"}}

	got, err := Orders(orders, users, nil)
	if err != nil {
		t.Fatalf("Orders() error = %v", err)
	}

	got[0].User.ShowInfo = true
	if got[1].User.ShowInfo {
		t.Error("mutating one order's user leaked into the other order")
	}
}

func TestOrdersEmptyBirthdayStaysEmpty(t *testing.T) {
	orders := []models.RawOrder{{ID: 1, UserID: 1}}
	users := []models.RawUser{{ID: 1, Birthday: ""}}

	got, err := Orders(orders, users, nil)
	if err != nil {
		t.Fatalf("Orders() error = %v", err)
	}
	if got[0].User.Birthday != "" {
		t.Errorf("birthday = %q, want empty", got[0].User.Birthday)
	}
}
