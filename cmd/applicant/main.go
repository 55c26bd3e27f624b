package main

import "grant-management-portal/app"

func main() {
	app.RunApplicant()
}
