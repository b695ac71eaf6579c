package domain

type User struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"` // scrypt hashed
}

func NewUser(name, email, hashedPassword string) *User {
	return &User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
}
