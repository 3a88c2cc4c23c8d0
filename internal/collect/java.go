package collect

import (
	"errors"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	jsemerrors "github.com/standardbeagle/jsem/internal/errors"
	"github.com/standardbeagle/jsem/internal/symbols"
)

// parseJavaFile extracts the declaration structure of one Java source
// file. Method bodies are not walked: the model carries declarations
// only, which is all resolution needs.
func parseJavaFile(path string, content []byte) (*fileDecl, error) {
	parser := sitter.NewParser()
	language := sitter.NewLanguage(tree_sitter_java.Language())
	if err := parser.SetLanguage(language); err != nil {
		return nil, jsemerrors.NewParseError(path, 0, 0, err)
	}

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, jsemerrors.NewParseError(path, 0, 0, errors.New("parser produced no tree"))
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, jsemerrors.NewParseError(path, 0, 0, errors.New("tree has no root node"))
	}

	f := &fileDecl{
		path: path,
		pkg:  extractPackageName(root, content),
	}
	for i := uint(0); i < root.ChildCount(); i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "class_declaration", "interface_declaration", "enum_declaration":
			if td := extractType(child, content, path); td != nil {
				f.types = append(f.types, td)
			}
		}
	}
	return f, nil
}

// extractPackageName reads the package declaration, returning "" for
// the default package.
func extractPackageName(root *sitter.Node, content []byte) string {
	pkgNode := findChildByKind(root, "package_declaration")
	if pkgNode == nil {
		return ""
	}
	for i := uint(0); i < pkgNode.ChildCount(); i++ {
		child := pkgNode.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "scoped_identifier", "identifier":
			return nodeText(child, content)
		}
	}
	return ""
}

// extractType builds the declaration record of a class, interface or
// enum, recursing into nested type bodies.
func extractType(node *sitter.Node, content []byte, path string) *typeDecl {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	td := &typeDecl{
		name: nodeText(nameNode, content),
		loc:  nodeLocation(node, path),
	}
	if node.Kind() == "interface_declaration" {
		td.flags |= symbols.FlagInterface
	}
	if mods := findChildByKind(node, "modifiers"); mods != nil {
		td.flags |= parseModifiers(mods)
	}

	if sc := node.ChildByFieldName("superclass"); sc != nil {
		td.superclass = firstTypeName(sc, content)
	}
	if ifaces := node.ChildByFieldName("interfaces"); ifaces != nil {
		td.interfaces = append(td.interfaces, typeListNames(ifaces, content)...)
	}
	// Interfaces spell their supertypes as `extends A, B`.
	if ext := findChildByKind(node, "extends_interfaces"); ext != nil {
		td.interfaces = append(td.interfaces, typeListNames(ext, content)...)
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return td
	}
	for i := uint(0); i < body.ChildCount(); i++ {
		child := body.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "field_declaration", "constant_declaration":
			td.fields = append(td.fields, extractFields(child, content, path)...)
		case "method_declaration":
			if md, ok := extractMethod(child, content, path); ok {
				td.methods = append(td.methods, md)
			}
		case "class_declaration", "interface_declaration", "enum_declaration":
			if nested := extractType(child, content, path); nested != nil {
				td.nested = append(td.nested, nested)
			}
		case "enum_constant":
			// Enum constants behave as public static final fields.
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				td.fields = append(td.fields, memberDecl{
					name:  nodeText(nameNode, content),
					flags: symbols.FlagPublic | symbols.FlagStatic | symbols.FlagFinal,
					loc:   nodeLocation(child, path),
				})
			}
		case "enum_body_declarations":
			// Members after the constant list of an enum body.
			for j := uint(0); j < child.ChildCount(); j++ {
				sub := child.Child(j)
				if sub == nil {
					continue
				}
				switch sub.Kind() {
				case "field_declaration":
					td.fields = append(td.fields, extractFields(sub, content, path)...)
				case "method_declaration":
					if md, ok := extractMethod(sub, content, path); ok {
						td.methods = append(td.methods, md)
					}
				case "class_declaration", "interface_declaration", "enum_declaration":
					if nested := extractType(sub, content, path); nested != nil {
						td.nested = append(td.nested, nested)
					}
				}
			}
		}
	}
	return td
}

// extractFields handles the one-declaration-many-declarators form:
// `private int a, b;` yields two members sharing flags.
func extractFields(node *sitter.Node, content []byte, path string) []memberDecl {
	var flags symbols.Flags
	if mods := findChildByKind(node, "modifiers"); mods != nil {
		flags = parseModifiers(mods)
	}
	var out []memberDecl
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil || child.Kind() != "variable_declarator" {
			continue
		}
		nameNode := child.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		out = append(out, memberDecl{
			name:  nodeText(nameNode, content),
			flags: flags,
			loc:   nodeLocation(child, path),
		})
	}
	return out
}

func extractMethod(node *sitter.Node, content []byte, path string) (memberDecl, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return memberDecl{}, false
	}
	var flags symbols.Flags
	if mods := findChildByKind(node, "modifiers"); mods != nil {
		flags = parseModifiers(mods)
	}
	return memberDecl{
		name:  nodeText(nameNode, content),
		flags: flags,
		loc:   nodeLocation(node, path),
	}, true
}

// parseModifiers maps modifier keyword nodes onto the flag bitset.
func parseModifiers(mods *sitter.Node) symbols.Flags {
	var flags symbols.Flags
	for i := uint(0); i < mods.ChildCount(); i++ {
		child := mods.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "public":
			flags |= symbols.FlagPublic
		case "private":
			flags |= symbols.FlagPrivate
		case "protected":
			flags |= symbols.FlagProtected
		case "static":
			flags |= symbols.FlagStatic
		case "final":
			flags |= symbols.FlagFinal
		case "abstract":
			flags |= symbols.FlagAbstract
		}
	}
	return flags
}

// firstTypeName digs the type name out of a wrapper like a superclass
// clause or a generic type, dropping type arguments.
func firstTypeName(node *sitter.Node, content []byte) string {
	if node == nil {
		return ""
	}
	switch node.Kind() {
	case "type_identifier", "scoped_type_identifier":
		return nodeText(node, content)
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "type_identifier", "scoped_type_identifier":
			return nodeText(child, content)
		case "generic_type":
			return firstTypeName(child, content)
		}
	}
	return ""
}

// typeListNames collects the type names of an implements/extends list.
func typeListNames(node *sitter.Node, content []byte) []string {
	list := node
	if inner := findChildByKind(node, "type_list"); inner != nil {
		list = inner
	}
	var out []string
	for i := uint(0); i < list.ChildCount(); i++ {
		child := list.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "type_identifier", "scoped_type_identifier":
			out = append(out, nodeText(child, content))
		case "generic_type":
			if name := firstTypeName(child, content); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

func findChildByKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && child.Kind() == kind {
			return child
		}
	}
	return nil
}

func nodeText(node *sitter.Node, content []byte) string {
	if node == nil {
		return ""
	}
	start := node.StartByte()
	end := node.EndByte()
	if start > uint(len(content)) || end > uint(len(content)) || start > end {
		return ""
	}
	return string(content[start:end])
}

func nodeLocation(node *sitter.Node, path string) symbols.Location {
	if node == nil {
		return symbols.Location{}
	}
	pos := node.StartPosition()
	return symbols.Location{
		File:   path,
		Line:   int(pos.Row) + 1,
		Column: int(pos.Column) + 1,
	}
}
