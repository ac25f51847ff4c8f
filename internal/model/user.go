package model

// User はログイン主体を表す。
// IsAdminは元データ仕様に合わせて文字列リテラル "true" / "false" で保持する。
type User struct {
	ID       int
	Username string
	Password string
	IsAdmin  string
}

// InsertUser はユーザー作成時の入力フィールドを表す。
type InsertUser struct {
	Username string
	Password string
	IsAdmin  string
}

// IsAdminBool はIsAdmin文字列をboolとして返す。
func (u *User) IsAdminBool() bool {
	return u.IsAdmin == "true"
}
