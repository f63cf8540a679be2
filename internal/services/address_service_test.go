package services

import (
	"errors"
	"testing"

	"github.com/aris220/contact-management-api/internal/dto"
	"github.com/aris220/contact-management-api/internal/testutil"
	"github.com/aris220/contact-management-api/internal/validation"
	"gorm.io/gorm"
)

func newAddressService(tb testing.TB) (*AddressService, *gorm.DB) {
	tb.Helper()
	db := testutil.DB(tb)
	return NewAddressService(db, NewContactService(db)), db
}

func TestAddressRoundTrip(t *testing.T) {
	svc, db := newAddressService(t)
	user := testutil.SeedUser(t, db, "aris", "secret")
	contact := testutil.SeedContact(t, db, user.Username, "Aris")

	created, err := svc.Create(user, contact.ID, &dto.CreateAddressRequest{
		Street:     strptr("Jalan Sudirman 1"),
		City:       strptr("Jakarta"),
		Province:   strptr("DKI Jakarta"),
		Country:    "Indonesia",
		PostalCode: "12190",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(user, contact.ID, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *got.Street != "Jalan Sudirman 1" || *got.City != "Jakarta" || *got.Province != "DKI Jakarta" ||
		got.Country != "Indonesia" || got.PostalCode != "12190" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestAddressRequiresOwnedContact(t *testing.T) {
	svc, db := newAddressService(t)
	owner := testutil.SeedUser(t, db, "owner", "secret")
	other := testutil.SeedUser(t, db, "other", "secret")
	contact := testutil.SeedContact(t, db, owner.Username, "Aris")
	address := testutil.SeedAddress(t, db, contact.ID, "Indonesia", "12190")

	req := &dto.CreateAddressRequest{Country: "Indonesia", PostalCode: "12190"}
	if _, err := svc.Create(other, contact.ID, req); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("Create under foreign contact: expected ErrContactNotFound, got %v", err)
	}
	if _, err := svc.Get(other, contact.ID, address.ID); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("Get under foreign contact: expected ErrContactNotFound, got %v", err)
	}
	if err := svc.Delete(other, contact.ID, address.ID); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("Delete under foreign contact: expected ErrContactNotFound, got %v", err)
	}
	if _, err := svc.List(other, contact.ID); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("List under foreign contact: expected ErrContactNotFound, got %v", err)
	}
}

func TestAddressScopedToParentContact(t *testing.T) {
	svc, db := newAddressService(t)
	user := testutil.SeedUser(t, db, "aris", "secret")
	contactA := testutil.SeedContact(t, db, user.Username, "A")
	contactB := testutil.SeedContact(t, db, user.Username, "B")
	address := testutil.SeedAddress(t, db, contactA.ID, "Indonesia", "12190")

	// Same user, wrong parent: the Contact -> Address link is broken.
	if _, err := svc.Get(user, contactB.ID, address.ID); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("Get via wrong parent: expected ErrAddressNotFound, got %v", err)
	}
	if err := svc.Delete(user, contactB.ID, address.ID); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("Delete via wrong parent: expected ErrAddressNotFound, got %v", err)
	}
}

func TestAddressUpdateReplacesOptionalFields(t *testing.T) {
	svc, db := newAddressService(t)
	user := testutil.SeedUser(t, db, "aris", "secret")
	contact := testutil.SeedContact(t, db, user.Username, "Aris")
	address := testutil.SeedAddress(t, db, contact.ID, "Indonesia", "12190")

	updated, err := svc.Update(user, contact.ID, address.ID, &dto.UpdateAddressRequest{
		Country:    "Singapore",
		PostalCode: "018956",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Country != "Singapore" || updated.PostalCode != "018956" {
		t.Fatalf("required fields not replaced: %+v", updated)
	}
	if updated.Street != nil || updated.City != nil || updated.Province != nil {
		t.Fatalf("optional fields must be replaced wholesale: %+v", updated)
	}
}

func TestAddressValidationListsEveryField(t *testing.T) {
	svc, db := newAddressService(t)
	user := testutil.SeedUser(t, db, "aris", "secret")
	contact := testutil.SeedContact(t, db, user.Username, "Aris")

	_, err := svc.Create(user, contact.ID, &dto.CreateAddressRequest{
		Street:     strptr("street abc"),
		Country:    "",
		PostalCode: "",
	})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}

	got := map[string]bool{}
	for _, f := range verr.Fields {
		got[f.Field] = true
	}
	if !got["country"] || !got["postal_code"] {
		t.Fatalf("expected country and postal_code reported, got %+v", verr.Fields)
	}

	// Shape errors fail before authorization: the same payload against a
	// non-existent contact still reports the field errors, not 404.
	if _, err := svc.Create(user, contact.ID+999, &dto.CreateAddressRequest{}); !errors.As(err, &verr) {
		t.Fatalf("validation must run before the ownership check, got %v", err)
	}
}

func TestAddressDeleteTwice(t *testing.T) {
	svc, db := newAddressService(t)
	user := testutil.SeedUser(t, db, "aris", "secret")
	contact := testutil.SeedContact(t, db, user.Username, "Aris")
	address := testutil.SeedAddress(t, db, contact.ID, "Indonesia", "12190")

	if err := svc.Delete(user, contact.ID, address.ID); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := svc.Delete(user, contact.ID, address.ID); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("second Delete: expected ErrAddressNotFound, got %v", err)
	}
}

func TestAddressListScopedToContact(t *testing.T) {
	svc, db := newAddressService(t)
	user := testutil.SeedUser(t, db, "aris", "secret")
	contactA := testutil.SeedContact(t, db, user.Username, "A")
	contactB := testutil.SeedContact(t, db, user.Username, "B")
	testutil.SeedAddress(t, db, contactA.ID, "Indonesia", "11111")
	testutil.SeedAddress(t, db, contactA.ID, "Indonesia", "22222")
	testutil.SeedAddress(t, db, contactB.ID, "Indonesia", "33333")

	list, err := svc.List(user, contactA.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 addresses for contact A, got %+v", list)
	}
}
