package domain

type BootstrapAdmin struct {
	Email       string
	DisplayName string
	Password    string
}
