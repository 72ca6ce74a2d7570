package main

// General API documentation for swaggo. Run `swag init -g cmd/mlmcompare/docs.go -o docs` to regenerate.
//
// @title           mlmcompare API
// @version         1.0
// @description     Compare fill-mask predictions of two masked language models.
//
// @contact.name   mlmcompare maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
