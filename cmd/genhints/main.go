package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/miekg/dns"
)

//go:embed roothints.go.tmpl
var roothintsgotmpl string

type Hint struct {
	Name string
	Addr netip.Addr
}

type Roots struct {
	Roots4 []Hint
	Roots6 []Hint
}

func main() {
	resp, err := http.Get("https://www.internic.net/domain/named.root")
	if err == nil {
		defer resp.Body.Close()
		var body []byte
		if body, err = io.ReadAll(resp.Body); err == nil {
			var roots4, roots6 []Hint
			zp := dns.NewZoneParser(bytes.NewReader(body), "", "")
			for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
				switch rr := rr.(type) {
				case *dns.A:
					if ip, ok := netip.AddrFromSlice(rr.A); ok {
						if ip = ip.Unmap(); ip.Is4() {
							roots4 = append(roots4, Hint{Name: hintName(rr.Hdr.Name), Addr: ip})
						}
					}
				case *dns.AAAA:
					if ip, ok := netip.AddrFromSlice(rr.AAAA); ok {
						roots6 = append(roots6, Hint{Name: hintName(rr.Hdr.Name), Addr: ip})
					}
				}
			}

			sort.Slice(roots4, func(i, j int) bool { return roots4[i].Name < roots4[j].Name })
			sort.Slice(roots6, func(i, j int) bool { return roots6[i].Name < roots6[j].Name })

			if err = zp.Err(); err == nil {
				var of *os.File
				if len(os.Args) < 2 {
					of = os.Stdout
				} else {
					if of, err = os.Create(os.Args[1]); err == nil {
						defer of.Close()
					}
				}
				if err == nil {
					var t *template.Template
					if t, err = template.New("").Parse(roothintsgotmpl); err == nil {
						err = t.Execute(of, Roots{Roots4: roots4, Roots6: roots6})
					}
				}
			}
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func hintName(owner string) string {
	return strings.ToLower(strings.TrimSuffix(owner, "."))
}
