package converter

import (
	"massfit-bot/internal/domain/basket"
	"massfit-bot/internal/domain/checkout"
	"massfit-bot/internal/domain/order"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func SessionToUpsertParams(s *checkout.Session) sqlc.UpsertCheckoutSessionParams {
	params := sqlc.UpsertCheckoutSessionParams{
		UserID:    s.UserID(),
		State:     s.State().String(),
		BranchID:  pgconv.Int64PtrToPgtype(s.BranchID()),
		UpdatedAt: pgconv.TimeToPgtype(s.UpdatedAt()),
	}
	if ft := s.FulfillmentType(); ft != nil {
		params.FulfillmentType = pgconv.StringToPgtype(string(*ft))
	}
	if loc := s.Location(); loc != nil {
		params.Latitude = pgtype.Float8{Float64: loc.Latitude, Valid: true}
		params.Longitude = pgtype.Float8{Float64: loc.Longitude, Valid: true}
	}
	return params
}

func SessionFromRow(row sqlc.CheckoutSessions) *checkout.Session {
	var ft *order.FulfillmentType
	if row.FulfillmentType.Valid {
		t := order.FulfillmentType(row.FulfillmentType.String)
		ft = &t
	}
	var loc *order.Location
	if row.Latitude.Valid && row.Longitude.Valid {
		loc = &order.Location{Latitude: row.Latitude.Float64, Longitude: row.Longitude.Float64}
	}
	return checkout.ReconstructSession(
		row.UserID,
		checkout.State(row.State),
		ft,
		loc,
		pgconv.Int64PtrFromPgtype(row.BranchID),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

// BasketLine is the column set shared by the locked and unlocked basket reads.
type BasketLine struct {
	ProductID int64
	Name      string
	Price     pgtype.Numeric
	Quantity  int32
}

func BasketFromLines(userID int64, rows []BasketLine) (basket.Basket, error) {
	b := basket.Basket{UserID: userID, Lines: make([]basket.Line, 0, len(rows))}
	for _, r := range rows {
		price, err := pgconv.DecimalFromNumeric(r.Price)
		if err != nil {
			return basket.Basket{}, errs.Wrap(err, "basket line price")
		}
		b.Lines = append(b.Lines, basket.Line{
			ProductID: r.ProductID,
			Name:      r.Name,
			UnitPrice: price,
			Quantity:  int(r.Quantity),
		})
	}
	return b, nil
}
