package main

import (
	"bytes"
	"fmt"
	"unitconverter"
	unitconvmsgpack "unitconverter/msgpack"
)

func main() {
	session := unitconverter.NewSession()
	session.AddHook(func(res unitconverter.ConversionResult, s *unitconverter.Session) error {
		fmt.Printf("[%s] %v %s -> %v %s (%s)\n", res.Request.ID, res.Request.Value, res.Request.From, res.Value, res.Request.To, res.Category)
		return nil
	})

	for _, line := range [][]string{
		{"100", "cm", "m"},
		{"2", "kg", "lb"},
		{"32", "F", "C"},
	} {
		req, err := unitconverter.ParseRequest(line)
		if err != nil {
			panic(err)
		}
		if _, err := session.Convert(req); err != nil {
			panic(err)
		}
	}

	// A cross-category pair is rejected and not recorded.
	if _, err := unitconverter.Convert(1, "cm", "kg"); err != nil {
		fmt.Println("Error:", err)
	}

	var buf bytes.Buffer
	if err := unitconvmsgpack.EncodeSession(&buf, session); err != nil {
		panic(err)
	}
	fmt.Printf("encoded %d conversions in %d bytes\n", session.Len(), buf.Len())

	var rb unitconvmsgpack.RecordBuffer
	recs, err := rb.Feed(buf.Bytes())
	if err != nil {
		panic(err)
	}
	for _, rec := range recs {
		fmt.Printf("%s: %v %s = %v %s\n", rec.Category, rec.Value, rec.FromUnit, rec.Result, rec.ToUnit)
	}
}
