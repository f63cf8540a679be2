package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aris220/contact-management-api/internal/dto"
	"github.com/aris220/contact-management-api/internal/models"
	"github.com/aris220/contact-management-api/internal/testutil"
	"github.com/aris220/contact-management-api/internal/validation"
	"gorm.io/gorm"
)

func strptr(s string) *string { return &s }

func newContactService(tb testing.TB) (*ContactService, *gorm.DB) {
	tb.Helper()
	db := testutil.DB(tb)
	return NewContactService(db), db
}

func TestContactCreateAndGet(t *testing.T) {
	svc, db := newContactService(t)
	user := testutil.SeedUser(t, db, "aris", "secret")

	created, err := svc.Create(user, &dto.CreateContactRequest{
		FirstName: "Aris",
		LastName:  strptr("Kurnia"),
		Email:     strptr("aris@mail.com"),
		Phone:     strptr("01234567"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("storage must assign an id")
	}

	got, err := svc.Get(user, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FirstName != "Aris" || *got.LastName != "Kurnia" || *got.Email != "aris@mail.com" || *got.Phone != "01234567" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestContactScopedToOwner(t *testing.T) {
	svc, db := newContactService(t)
	owner := testutil.SeedUser(t, db, "owner", "secret")
	other := testutil.SeedUser(t, db, "other", "secret")
	contact := testutil.SeedContact(t, db, owner.Username, "Aris")

	if _, err := svc.Get(other, contact.ID); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("Get by non-owner: expected ErrContactNotFound, got %v", err)
	}
	if _, err := svc.Update(other, contact.ID, &dto.UpdateContactRequest{FirstName: "X"}); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("Update by non-owner: expected ErrContactNotFound, got %v", err)
	}
	if err := svc.Delete(other, contact.ID); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("Delete by non-owner: expected ErrContactNotFound, got %v", err)
	}

	// The contact is untouched.
	var reloaded models.Contact
	if err := db.First(&reloaded, contact.ID).Error; err != nil {
		t.Fatalf("contact must still exist: %v", err)
	}
	if reloaded.FirstName != "Aris" {
		t.Fatalf("contact mutated by non-owner: %+v", reloaded)
	}
}

func TestContactUpdateReplacesOptionalFields(t *testing.T) {
	svc, db := newContactService(t)
	user := testutil.SeedUser(t, db, "aris", "secret")

	created, err := svc.Create(user, &dto.CreateContactRequest{
		FirstName: "Aris",
		LastName:  strptr("Kurnia"),
		Email:     strptr("aris@mail.com"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// PUT semantics: optional fields not resent are cleared, not merged.
	updated, err := svc.Update(user, created.ID, &dto.UpdateContactRequest{FirstName: "Budi"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.FirstName != "Budi" {
		t.Fatalf("first name not replaced: %+v", updated)
	}
	if updated.LastName != nil || updated.Email != nil || updated.Phone != nil {
		t.Fatalf("optional fields must be replaced wholesale: %+v", updated)
	}
}

func TestContactDeleteTwice(t *testing.T) {
	svc, db := newContactService(t)
	user := testutil.SeedUser(t, db, "aris", "secret")
	contact := testutil.SeedContact(t, db, user.Username, "Aris")

	if err := svc.Delete(user, contact.ID); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := svc.Delete(user, contact.ID); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("second Delete: expected ErrContactNotFound, got %v", err)
	}
}

func TestContactCreateValidation(t *testing.T) {
	svc, db := newContactService(t)
	user := testutil.SeedUser(t, db, "aris", "secret")

	_, err := svc.Create(user, &dto.CreateContactRequest{
		FirstName: "",
		Email:     strptr("not-an-email"),
	})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected first_name and email reported, got %+v", verr.Fields)
	}
}

func TestContactSearchPaging(t *testing.T) {
	svc, db := newContactService(t)
	user := testutil.SeedUser(t, db, "aris", "secret")
	for i := 0; i < 15; i++ {
		testutil.SeedContact(t, db, user.Username, fmt.Sprintf("contact-%02d", i))
	}

	page1, err := svc.Search(user, &dto.SearchContactRequest{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("Search page 1: %v", err)
	}
	if len(page1.Data) != 10 || page1.Paging.TotalPage != 2 || page1.Paging.CurrentPage != 1 || page1.Paging.Size != 10 {
		t.Fatalf("page 1: got %d rows, paging %+v", len(page1.Data), page1.Paging)
	}

	page2, err := svc.Search(user, &dto.SearchContactRequest{Page: 2, Size: 10})
	if err != nil {
		t.Fatalf("Search page 2: %v", err)
	}
	if len(page2.Data) != 5 || page2.Paging.CurrentPage != 2 {
		t.Fatalf("page 2: got %d rows, paging %+v", len(page2.Data), page2.Paging)
	}

	// Paging past the last page keeps the requested page number.
	page3, err := svc.Search(user, &dto.SearchContactRequest{Page: 3, Size: 10})
	if err != nil {
		t.Fatalf("Search page 3: %v", err)
	}
	if len(page3.Data) != 0 || page3.Paging.CurrentPage != 3 || page3.Paging.TotalPage != 2 {
		t.Fatalf("page 3: got %d rows, paging %+v", len(page3.Data), page3.Paging)
	}

	// Zero matches means zero total pages.
	empty, err := svc.Search(user, &dto.SearchContactRequest{Name: "nomatch", Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("Search no match: %v", err)
	}
	if len(empty.Data) != 0 || empty.Paging.TotalPage != 0 {
		t.Fatalf("no match: got %d rows, paging %+v", len(empty.Data), empty.Paging)
	}
}

func TestContactSearchFilters(t *testing.T) {
	svc, db := newContactService(t)
	user := testutil.SeedUser(t, db, "aris", "secret")
	stranger := testutil.SeedUser(t, db, "stranger", "secret")

	first, err := svc.Create(user, &dto.CreateContactRequest{
		FirstName: "Aris", LastName: strptr("Kurnia"),
		Email: strptr("aris@mail.com"), Phone: strptr("0812333"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(user, &dto.CreateContactRequest{
		FirstName: "Budi", LastName: strptr("Setiawan"),
		Email: strptr("budi@mail.com"), Phone: strptr("0819999"),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(stranger, &dto.CreateContactRequest{FirstName: "Aris"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Name matches either first or last name, scoped to the caller.
	byLast, err := svc.Search(user, &dto.SearchContactRequest{Name: "Kurnia", Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("Search by last name: %v", err)
	}
	if len(byLast.Data) != 1 || byLast.Data[0].ID != first.ID {
		t.Fatalf("search by last name: %+v", byLast.Data)
	}

	byEmail, err := svc.Search(user, &dto.SearchContactRequest{Email: "budi", Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("Search by email: %v", err)
	}
	if len(byEmail.Data) != 1 || byEmail.Data[0].FirstName != "Budi" {
		t.Fatalf("search by email: %+v", byEmail.Data)
	}

	byPhone, err := svc.Search(user, &dto.SearchContactRequest{Phone: "9999", Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("Search by phone: %v", err)
	}
	if len(byPhone.Data) != 1 || byPhone.Data[0].FirstName != "Budi" {
		t.Fatalf("search by phone: %+v", byPhone.Data)
	}

	// Unfiltered search never leaks another user's contacts.
	all, err := svc.Search(user, &dto.SearchContactRequest{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("Search all: %v", err)
	}
	if len(all.Data) != 2 {
		t.Fatalf("expected only the caller's contacts, got %+v", all.Data)
	}
}
