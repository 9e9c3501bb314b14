package domain

type Company struct {
	ID       int64
	Name     string
	Industry string
	Location string
	Ctime    int64
	Utime    int64
}
