package model

const RoleAdministrator = "administrator"

type User struct {
	ID    int64  `bson:"_id"`
	Login string `bson:"login"`
	Role  string `bson:"role"`
}
