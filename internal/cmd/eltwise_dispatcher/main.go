// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// eltwise_dispatcher generates gen_register_dtypes.go: the registration of the generic functions
// instantiated for each dtype of the catalog, for the package given by -package.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path"
	"strings"
	"text/template"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

type DTypeInfo struct {
	DType, GoType string
}

// Registration of one dtype: Expr is the function registered for it.
type Registration struct {
	DType, Expr string
}

type MapInfo struct {
	MapName       string
	Registrations []Registration
}

type PairRegistration struct {
	DType1, DType2, Expr string
}

type PairMapInfo struct {
	MapName       string
	Registrations []PairRegistration
}

type Data struct {
	Package  string
	Imports  []string
	Maps     []MapInfo
	PairMaps []PairMapInfo
}

var (
	flagPackage = flag.String("package", "", "Package to generate registrations for: \"tensors\" or \"native\".")
	fileName    = "gen_register_dtypes.go"
)

var (
	dtypesInts    = []DTypeInfo{{"Int8", "int8"}, {"Int16", "int16"}, {"Int32", "int32"}, {"Int64", "int64"}, {"Uint8", "uint8"}}
	dtypesFloats  = []DTypeInfo{{"Float32", "float32"}, {"Float64", "float64"}}
	dtypesFloat16 = []DTypeInfo{{"Float16", "float16.Float16"}}
	dtypesPOD     = concat(dtypesInts, dtypesFloats)
	dtypesAll     = concat(dtypesPOD, dtypesFloat16)
)

func concat(lists ...[]DTypeInfo) (all []DTypeInfo) {
	for _, list := range lists {
		all = append(all, list...)
	}
	return
}

// generic registers generic[GoType] for each of the dtypes.
func generic(mapName, generic string, dtypes []DTypeInfo) MapInfo {
	info := MapInfo{MapName: mapName}
	for _, dt := range dtypes {
		info.Registrations = append(info.Registrations, Registration{dt.DType, fmt.Sprintf("%s[%s]", generic, dt.GoType)})
	}
	return info
}

// genericPairs registers generic[GoType1, GoType2] for each pair of dtypes.
func genericPairs(mapName, generic string, dtypes1, dtypes2 []DTypeInfo) PairMapInfo {
	info := PairMapInfo{MapName: mapName}
	for _, dt1 := range dtypes1 {
		for _, dt2 := range dtypes2 {
			info.Registrations = append(info.Registrations, PairRegistration{
				dt1.DType, dt2.DType, fmt.Sprintf("%s[%s, %s]", generic, dt1.GoType, dt2.GoType)})
		}
	}
	return info
}

// opImpls registers newOpImpl(opFn) for each dtype, where opFn is built by exprFn.
func opImpls(mapName string, dtypes []DTypeInfo, exprFn func(dt DTypeInfo) string) MapInfo {
	info := MapInfo{MapName: mapName}
	for _, dt := range dtypes {
		info.Registrations = append(info.Registrations, Registration{dt.DType, fmt.Sprintf("newOpImpl(%s)", exprFn(dt))})
	}
	return info
}

// arithmetic returns the expression for a generic POD op, promoting Float16 to float32.
func arithmetic(op string) func(dt DTypeInfo) string {
	return func(dt DTypeInfo) string {
		if dt.DType == "Float16" {
			return fmt.Sprintf("promoteFloat16(%s[float32])", op)
		}
		return fmt.Sprintf("%s[%s]", op, dt.GoType)
	}
}

func divide(dt DTypeInfo) string {
	switch {
	case dt.DType == "Float16":
		return "promoteFloat16(divideFloatOp[float32])"
	case strings.HasPrefix(dt.DType, "Float"):
		return fmt.Sprintf("divideFloatOp[%s]", dt.GoType)
	}
	return fmt.Sprintf("divideIntOp[%s]", dt.GoType)
}

func floorDivide(dt DTypeInfo) string {
	return "floorDivide" + dt.DType
}

var packagesData = map[string]Data{
	"tensors": {
		Package: "tensors",
		Imports: []string{"github.com/gomlx/eltwise/pkg/core/dtypes", "github.com/x448/float16"},
		Maps: []MapInfo{
			generic("makeFlatDTypeMap", "makeFlatGeneric", dtypesAll),
		},
		PairMaps: []PairMapInfo{
			genericPairs("convertDTypePairMap", "convertGeneric", dtypesPOD, dtypesPOD),
			genericPairs("convertDTypePairMap", "convertToFloat16", dtypesPOD, dtypesFloat16),
			genericPairs("convertDTypePairMap", "convertFromFloat16", dtypesFloat16, dtypesPOD),
		},
	},
	"native": {
		Package: "native",
		Imports: []string{"github.com/gomlx/eltwise/pkg/core/dtypes"},
		Maps: []MapInfo{
			opImpls("addDTypeMap", dtypesAll, arithmetic("addOp")),
			opImpls("subtractDTypeMap", dtypesAll, arithmetic("subtractOp")),
			opImpls("multiplyDTypeMap", dtypesAll, arithmetic("multiplyOp")),
			opImpls("divideDTypeMap", dtypesAll, divide),
			opImpls("floorDivideDTypeMap", dtypesAll, floorDivide),
			opImpls("bitwiseAndDTypeMap", dtypesInts, arithmetic("bitwiseAndOp")),
			opImpls("bitwiseOrDTypeMap", dtypesInts, arithmetic("bitwiseOrOp")),
			opImpls("bitwiseXorDTypeMap", dtypesInts, arithmetic("bitwiseXorOp")),
		},
	},
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	data, found := packagesData[*flagPackage]
	if !found {
		klog.Fatalf("unknown -package=%q", *flagPackage)
	}

	registerTemplate := template.Must(
		template.
			New(fileName).
			Parse(

				`// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

/***** File generated by ./internal/cmd/eltwise_dispatcher. Don't edit it directly. *****/

package {{.Package}}

import (
{{- range .Imports }}
	"{{.}}"
{{- end }}
)

func init() {
{{- range .Maps}}

	// {{.MapName}}
{{- $mapName := .MapName }}
{{- range .Registrations }}
	{{$mapName}}.Register(dtypes.{{.DType}}, {{.Expr}})
{{- end }}
{{- end }}

{{- range .PairMaps}}

	// {{.MapName}}
{{- $mapName := .MapName }}
{{- range .Registrations }}
	{{$mapName}}.Register(dtypes.{{.DType1}}, dtypes.{{.DType2}}, {{.Expr}})
{{- end }}
{{- end }}
}
`))
	fullPath := path.Join(must.M1(os.Getwd()), fileName)
	f := must.M1(os.Create(fullPath))
	must.M(registerTemplate.Execute(f, data))
	must.M(f.Close())

	cmd := exec.Command("gofmt", "-w", fullPath)
	klog.V(1).Infof("\t%s\n", cmd)
	must.M(cmd.Run())
	fmt.Printf("✅ eltwise_dispatcher:  \tsuccessfully generated %s\n", fullPath)
}
