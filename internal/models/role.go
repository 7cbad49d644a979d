package models

type Role string

const (
	RoleHost Role = "HOST"
	RoleUser Role = "USER"
)
