package schema

import (
	"context"
	"fmt"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Compile runs rendered .proto source through the full compiler (parse,
// link and semantic checks) and returns the resulting descriptor.
func Compile(ctx context.Context, name, src string) (protoreflect.FileDescriptor, error) {
	compiler := protocompile.Compiler{
		Resolver: &protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(map[string]string{name: src}),
		},
	}
	files, err := compiler.Compile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("inferred schema does not compile: %w", err)
	}
	return files[0], nil
}
