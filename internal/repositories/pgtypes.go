package repositories

import (
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

func dateValue(d pgtype.Date) models.Date {
	if d.Status != pgtype.Present {
		return models.Date{}
	}
	return models.NewDate(d.Time.Year(), d.Time.Month(), d.Time.Day())
}

func datePtr(d pgtype.Date) *models.Date {
	if d.Status != pgtype.Present {
		return nil
	}
	v := dateValue(d)
	return &v
}

func timePtr(t pgtype.Timestamptz) *time.Time {
	if t.Status != pgtype.Present {
		return nil
	}
	v := t.Time
	return &v
}

func uuidPtr(u pgtype.UUID) *uuid.UUID {
	if u.Status != pgtype.Present {
		return nil
	}
	v := uuid.UUID(u.Bytes)
	return &v
}

func dateArg(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func uuidArg(u *uuid.UUID) any {
	if u == nil {
		return nil
	}
	return *u
}

func timeArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
