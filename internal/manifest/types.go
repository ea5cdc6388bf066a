package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/oro-core/netplan/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// typeExprToCtyType converts a `type = ...` HCL expression — a primitive
// keyword (string, number, bool, any) or a list/map/set/object
// constructor — into its cty.Type equivalent.
func typeExprToCtyType(ctx context.Context, expr hcl.Expression) (cty.Type, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return cty.DynamicPseudoType, nil
	}

	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		if v.Name == "object" {
			if len(v.Args) != 1 {
				return cty.DynamicPseudoType, fmt.Errorf("object() requires exactly one argument, got %d", len(v.Args))
			}
			objExpr, ok := v.Args[0].(*hclsyntax.ObjectConsExpr)
			if !ok {
				return cty.DynamicPseudoType, fmt.Errorf("the argument to object() must be an object literal like { key = type, ... }, got %T", v.Args[0])
			}
			if len(objExpr.Items) == 0 {
				return cty.Object(map[string]cty.Type{}), nil
			}

			attrTypes := make(map[string]cty.Type, len(objExpr.Items))
			for _, item := range objExpr.Items {
				key, err := objectConsKey(item.KeyExpr)
				if err != nil {
					return cty.DynamicPseudoType, err
				}
				valueType, err := typeExprToCtyType(ctx, item.ValueExpr)
				if err != nil {
					return cty.DynamicPseudoType, fmt.Errorf("in object attribute %q: %w", key, err)
				}
				attrTypes[key] = valueType
			}
			return cty.Object(attrTypes), nil
		}

		if len(v.Args) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("type constructor %q requires exactly one argument, got %d", v.Name, len(v.Args))
		}
		elementType, err := typeExprToCtyType(ctx, v.Args[0])
		if err != nil {
			return cty.DynamicPseudoType, err
		}
		if elementType == cty.DynamicPseudoType {
			return cty.DynamicPseudoType, fmt.Errorf("collection types cannot contain type 'any'")
		}

		switch v.Name {
		case "list":
			return cty.List(elementType), nil
		case "map":
			return cty.Map(elementType), nil
		case "set":
			return cty.Set(elementType), nil
		default:
			return cty.DynamicPseudoType, fmt.Errorf("unknown type constructor %q", v.Name)
		}

	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("invalid type keyword: traversal is not a single identifier")
		}
		switch rootName := v.Traversal.RootName(); rootName {
		case "string":
			return cty.String, nil
		case "number":
			return cty.Number, nil
		case "bool":
			return cty.Bool, nil
		case "any":
			return cty.DynamicPseudoType, nil
		default:
			logger.Debug("unknown primitive type keyword", "keyword", rootName)
			return cty.DynamicPseudoType, fmt.Errorf("unknown primitive type %q", rootName)
		}

	default:
		return cty.DynamicPseudoType, fmt.Errorf("unsupported expression for a type definition: %T", v)
	}
}

// objectConsKey unwraps the special HCL object-constructor key expression
// down to a plain string, accepting both bare identifiers and quoted
// string keys.
func objectConsKey(expr hclsyntax.Expression) (string, error) {
	keyExpr, ok := expr.(*hclsyntax.ObjectConsKeyExpr)
	if !ok {
		return "", fmt.Errorf("invalid key in object type definition: %T", expr)
	}
	switch kexpr := keyExpr.Wrapped.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(kexpr.Traversal) == 1 {
			return kexpr.Traversal.RootName(), nil
		}
	case *hclsyntax.TemplateExpr:
		if len(kexpr.Parts) == 1 {
			if lit, ok := kexpr.Parts[0].(*hclsyntax.LiteralValueExpr); ok && lit.Val.Type().Equals(cty.String) {
				return lit.Val.AsString(), nil
			}
		}
	}
	return "", fmt.Errorf("invalid key in object type definition: keys must be simple identifiers or quoted strings")
}
