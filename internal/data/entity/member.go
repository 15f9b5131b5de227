package entity

import "time"

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "Active"
	MemberStatusInactive MemberStatus = "Inactive"
)

func (s MemberStatus) Valid() bool {
	return s == MemberStatusActive || s == MemberStatusInactive
}

type Member struct {
	MemberID           int64        `db:"member_id" json:"member_id"`
	Name               string       `db:"name" json:"name"`
	Status             MemberStatus `db:"status" json:"status"`
	IsTrialUser        bool         `db:"is_trial_user" json:"is_trial_user"`
	ConvertedFromTrial bool         `db:"converted_from_trial" json:"converted_from_trial"`
	JoinDate           time.Time    `db:"join_date" json:"join_date"`
}
