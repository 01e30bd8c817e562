package model

import "time"

type Charge struct {
	ID         int64     `db:"id" json:"id"`
	Nature     string    `db:"nature" json:"nature"`
	Montant    float64   `db:"montant" json:"montant"`
	DateCharge time.Time `db:"date_charge" json:"date"`
}
