package conninfo_test

import (
	"fmt"
	"log"

	conninfo "github.com/okdana/conninfo-parse"
)

func ExampleParse() {
	params, err := conninfo.Parse("host=localhost dbname=orders")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(params.String())
}

func ExampleParseEnv() {
	params, err := conninfo.ParseEnv("postgresql://ana@db.example.com/orders?application_name=report", nil)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range params {
		if p.Source != conninfo.SourceExplicit {
			continue
		}
		fmt.Printf("%s=%s\n", p.Keyword, p.Value)
	}
	// Output:
	// user=ana
	// host=db.example.com
	// dbname=orders
	// application_name=report
}

func ExampleParams_Get() {
	params, err := conninfo.ParseEnv("host=db1 port=6432", nil)
	if err != nil {
		log.Fatal(err)
	}

	sslmode, _ := params.Get("sslmode")
	fmt.Println(sslmode)
	// Output:
	// prefer
}
