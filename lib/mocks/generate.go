package mocks

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o=flusher.mock.go ../destination Flusher
//counterfeiter:generate -o=tablemanager.mock.go ../destination TableManager
