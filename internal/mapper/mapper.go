// Package mapper converts between persisted entities and transfer objects.
// Functions are pure and never touch storage.
package mapper

import (
	"time"

	"outofschool/internal/dto"
	"outofschool/internal/model"
)

func CategoryToDTO(c model.Category) dto.CategoryDTO {
	return dto.CategoryDTO{ID: c.ID, Title: c.Title, Description: c.Description}
}

func CategoryToModel(d dto.CategoryDTO) model.Category {
	return model.Category{ID: d.ID, Title: d.Title, Description: d.Description}
}

func CityToDTO(c model.City) dto.CityDTO {
	return dto.CityDTO{
		ID:        c.ID,
		Name:      c.Name,
		District:  c.District,
		Region:    c.Region,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

func CityToModel(d dto.CityDTO) model.City {
	return model.City{
		ID:        d.ID,
		Name:      d.Name,
		District:  d.District,
		Region:    d.Region,
		Latitude:  d.Latitude,
		Longitude: d.Longitude,
	}
}

// InstitutionStatusToDTO picks the name for lang.
func InstitutionStatusToDTO(s model.InstitutionStatus, lang dto.Language) dto.InstitutionStatusDTO {
	name := s.Name
	if lang == dto.LanguageEN {
		name = s.NameEn
	}
	return dto.InstitutionStatusDTO{ID: s.ID, Name: name}
}

// InstitutionStatusToModel fills both names from the DTO, which is how new
// statuses are created before an English translation exists.
func InstitutionStatusToModel(d dto.InstitutionStatusDTO) model.InstitutionStatus {
	return model.InstitutionStatus{ID: d.ID, Name: d.Name, NameEn: d.Name}
}

func ProviderTypeToDTO(t model.ProviderType) dto.ProviderTypeDTO {
	return dto.ProviderTypeDTO{ID: t.ID, Name: t.Name}
}

func ProviderTypeToModel(d dto.ProviderTypeDTO) model.ProviderType {
	return model.ProviderType{ID: d.ID, Name: d.Name}
}

// ParentToDTO joins a parent with its user account. u may be nil.
func ParentToDTO(p model.Parent, u *model.User) dto.ParentDTO {
	out := dto.ParentDTO{
		ID:          p.ID,
		UserID:      p.UserID,
		Gender:      p.Gender,
		DateOfBirth: p.DateOfBirth,
	}
	if u != nil {
		out.FirstName = u.FirstName
		out.MiddleName = u.MiddleName
		out.LastName = u.LastName
		out.Email = u.Email
		out.PhoneNumber = u.PhoneNumber
		out.IsBlocked = u.IsBlocked
	}
	return out
}

func AddressToDTO(a model.Address) dto.AddressDTO {
	return dto.AddressDTO{City: a.City, Street: a.Street, BuildingNumber: a.BuildingNumber}
}

func AddressToModel(a dto.AddressDTO) model.Address {
	return model.Address{City: a.City, Street: a.Street, BuildingNumber: a.BuildingNumber}
}

func ProviderToDTO(p model.Provider) dto.ProviderDTO {
	return dto.ProviderDTO{
		ID:                  p.ID,
		FullTitle:           p.FullTitle,
		ShortTitle:          p.ShortTitle,
		Email:               p.Email,
		PhoneNumber:         p.PhoneNumber,
		Website:             p.Website,
		EdrpouIpn:           p.EdrpouIpn,
		Director:            p.Director,
		Founder:             p.Founder,
		TypeID:              p.TypeID,
		InstitutionStatusID: p.InstitutionStatusID,
		Status:              p.Status,
		IsBlocked:           p.IsBlocked,
		UserID:              p.UserID,
		LegalAddress:        AddressToDTO(p.LegalAddress),
	}
}

func ProviderToModel(d dto.ProviderDTO) model.Provider {
	return model.Provider{
		ID:                  d.ID,
		FullTitle:           d.FullTitle,
		ShortTitle:          d.ShortTitle,
		Email:               d.Email,
		PhoneNumber:         d.PhoneNumber,
		Website:             d.Website,
		EdrpouIpn:           d.EdrpouIpn,
		Director:            d.Director,
		Founder:             d.Founder,
		TypeID:              d.TypeID,
		InstitutionStatusID: d.InstitutionStatusID,
		Status:              d.Status,
		IsBlocked:           d.IsBlocked,
		UserID:              d.UserID,
		LegalAddress:        AddressToModel(d.LegalAddress),
	}
}

func WorkshopToDTO(w model.Workshop) dto.WorkshopDTO {
	return dto.WorkshopDTO{
		ID:            w.ID,
		Title:         w.Title,
		Email:         w.Email,
		Phone:         w.Phone,
		MinAge:        w.MinAge,
		MaxAge:        w.MaxAge,
		Price:         w.Price,
		Description:   w.Description,
		ProviderID:    w.ProviderID,
		ProviderTitle: w.ProviderTitle,
		CategoryID:    w.CategoryID,
	}
}

func WorkshopToModel(d dto.WorkshopDTO) model.Workshop {
	return model.Workshop{
		ID:            d.ID,
		Title:         d.Title,
		Email:         d.Email,
		Phone:         d.Phone,
		MinAge:        d.MinAge,
		MaxAge:        d.MaxAge,
		Price:         d.Price,
		Description:   d.Description,
		ProviderID:    d.ProviderID,
		ProviderTitle: d.ProviderTitle,
		CategoryID:    d.CategoryID,
	}
}

func BackupOperationToDTO(b model.BackupOperation) dto.BackupOperationDTO {
	return dto.BackupOperationDTO{
		ID:          b.ID,
		BackupDate:  b.BackupDate,
		TableName:   b.TableName,
		RowsCount:   b.RowsCount,
		StoragePath: b.StoragePath,
	}
}

func BackupOperationToModel(d dto.BackupOperationDTO) model.BackupOperation {
	return model.BackupOperation{
		ID:          d.ID,
		BackupDate:  d.BackupDate,
		TableName:   d.TableName,
		RowsCount:   d.RowsCount,
		StoragePath: d.StoragePath,
	}
}

func OperationWithObjectToDTO(o model.OperationWithObject) dto.OperationWithObjectDTO {
	at := o.EventDateTime
	return dto.OperationWithObjectDTO{
		ID:            o.ID,
		OperationType: o.OperationType,
		EntityType:    o.EntityType,
		EntityID:      o.EntityID,
		EventDateTime: &at,
		RowSeparator:  o.RowSeparator,
		Comment:       o.Comment,
	}
}

// OperationWithObjectToModel leaves EventDateTime zero when the DTO has none.
func OperationWithObjectToModel(d dto.OperationWithObjectDTO) model.OperationWithObject {
	var at time.Time
	if d.EventDateTime != nil {
		at = *d.EventDateTime
	}
	return model.OperationWithObject{
		ID:            d.ID,
		OperationType: d.OperationType,
		EntityType:    d.EntityType,
		EntityID:      d.EntityID,
		EventDateTime: at,
		RowSeparator:  d.RowSeparator,
		Comment:       d.Comment,
	}
}

func ChangesLogToDTO(c model.ChangesLog) dto.ChangesLogDTO {
	return dto.ChangesLogDTO{
		ID:           c.ID,
		EntityType:   c.EntityType,
		EntityID:     c.EntityID,
		PropertyName: c.PropertyName,
		OldValue:     c.OldValue,
		NewValue:     c.NewValue,
		UpdatedDate:  c.UpdatedDate,
		UserID:       c.UserID,
	}
}

// Slice maps every element of in with f.
func Slice[S, D any](in []S, f func(S) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
