package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"outofschool/internal/dto"
	"outofschool/internal/model"
)

func TestProvider_RoundTrip(t *testing.T) {
	statusID := int64(2)
	in := dto.ProviderDTO{
		ID:                  uuid.New(),
		FullTitle:           "Kyiv Art School",
		ShortTitle:          "KAS",
		Email:               "info@kas.example.com",
		PhoneNumber:         "+380441234567",
		EdrpouIpn:           "12345678",
		Director:            "Olena",
		Founder:             "City council",
		TypeID:              1,
		InstitutionStatusID: &statusID,
		Status:              model.ProviderStatusApproved,
		UserID:              "user-1",
		LegalAddress:        dto.AddressDTO{City: "Kyiv", Street: "Khreshchatyk", BuildingNumber: "1"},
	}

	assert.Equal(t, in, ProviderToDTO(ProviderToModel(in)))
}

func TestWorkshop_RoundTrip(t *testing.T) {
	in := dto.WorkshopDTO{
		ID:            uuid.New(),
		Title:         "Chess",
		Email:         "chess@example.com",
		Phone:         "+380501112233",
		MinAge:        6,
		MaxAge:        12,
		Price:         250,
		ProviderID:    uuid.New(),
		ProviderTitle: "Club",
		CategoryID:    3,
	}

	assert.Equal(t, in, WorkshopToDTO(WorkshopToModel(in)))
}

func TestInstitutionStatusToDTO(t *testing.T) {
	s := model.InstitutionStatus{ID: 1, Name: "Активний", NameEn: "Active"}

	assert.Equal(t, "Активний", InstitutionStatusToDTO(s, dto.LanguageUA).Name)
	assert.Equal(t, "Active", InstitutionStatusToDTO(s, dto.LanguageEN).Name)
}

func TestParentToDTO(t *testing.T) {
	g := model.GenderMale
	p := model.Parent{ID: uuid.New(), UserID: "u1", Gender: &g}

	withoutUser := ParentToDTO(p, nil)
	assert.Equal(t, p.ID, withoutUser.ID)
	assert.Empty(t, withoutUser.Email)

	withUser := ParentToDTO(p, &model.User{ID: "u1", FirstName: "Taras", Email: "t@example.com", IsBlocked: true})
	assert.Equal(t, "Taras", withUser.FirstName)
	assert.Equal(t, "t@example.com", withUser.Email)
	assert.True(t, withUser.IsBlocked)
}

func TestOperationWithObject_EventTime(t *testing.T) {
	assert.True(t, OperationWithObjectToModel(dto.OperationWithObjectDTO{}).EventDateTime.IsZero())

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	m := OperationWithObjectToModel(dto.OperationWithObjectDTO{EventDateTime: &at})
	assert.Equal(t, at, m.EventDateTime)
	assert.Equal(t, at, *OperationWithObjectToDTO(m).EventDateTime)
}

func TestSlice(t *testing.T) {
	got := Slice([]model.Category{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}, CategoryToDTO)
	assert.Equal(t, []dto.CategoryDTO{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}, got)
	assert.Empty(t, Slice([]model.Category(nil), CategoryToDTO))
}
