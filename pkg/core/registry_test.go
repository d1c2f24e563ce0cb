package core

import (
	"strings"
	"sync"
	"testing"

	"github.com/go-drift/livenative/pkg/attr"
	"github.com/go-drift/livenative/pkg/node"
)

func nopFactory(ctx *BuildContext) (Widget, error) {
	return NewBase(ctx.Tag(), attr.DefaultModifiers()), nil
}

func TestRegisterRejectsInvalidEntries(t *testing.T) {
	reg := NewRegistry()
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{"empty tag", Entry{Tag: " ", Factory: nopFactory}, "empty tag"},
		{"nil factory", Entry{Tag: "x"}, "nil factory"},
		{"unnamed role", Entry{Tag: "x", Factory: nopFactory, Roles: []Role{{Tags: []string{"y"}}}}, "unnamed role"},
	}
	for _, tt := range tests {
		err := reg.Register(tt.entry)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: Register error = %v, want %q", tt.name, err, tt.want)
		}
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d after rejected registrations", reg.Len())
	}
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Entry{Tag: "Text", Factory: nopFactory})
	if err := reg.Register(Entry{Tag: "text", Factory: nopFactory}); err == nil {
		t.Error("duplicate registration (case-insensitive) should fail")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustRegister should panic on duplicate")
		}
	}()
	reg.MustRegister(Entry{Tag: "TEXT", Factory: nopFactory})
}

func TestLookupCaseInsensitive(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Entry{Tag: "TextField", Factory: nopFactory})
	if _, ok := reg.Lookup("textfield"); !ok {
		t.Error("Lookup(textfield) failed")
	}
	if _, ok := reg.Lookup("TEXTFIELD"); !ok {
		t.Error("Lookup(TEXTFIELD) failed")
	}
}

func TestReplaceUnregisterTags(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Entry{Tag: "b", Factory: nopFactory})
	reg.MustRegister(Entry{Tag: "a", Factory: nopFactory})
	if err := reg.Replace(Entry{Tag: "b", Factory: nopFactory, Roles: []Role{{Name: "r"}}}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	e, _ := reg.Lookup("b")
	if len(e.Roles) != 1 {
		t.Errorf("Replace did not overwrite entry")
	}
	if got := strings.Join(reg.Tags(), ","); got != "a,b" {
		t.Errorf("Tags() = %q, want a,b", got)
	}
	if !reg.Unregister("a") || reg.Unregister("a") {
		t.Error("Unregister should report presence once")
	}
	clone := reg.Clone()
	reg.Unregister("b")
	if clone.Len() != 1 {
		t.Errorf("clone affected by later writes: Len() = %d", clone.Len())
	}
}

func TestResolveDuringConcurrentWrites(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Entry{Tag: "column", Factory: nopFactory})
	reg.MustRegister(Entry{Tag: "text", Factory: nopFactory})
	desc := node.New("column", node.Attrs(), node.New("text", node.Attrs()), node.New("text", node.Attrs()))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			reg.Replace(Entry{Tag: "extra", Factory: nopFactory})
			reg.Unregister("extra")
		}
	}()
	go func() {
		defer wg.Done()
		r := NewResolver(reg)
		for i := 0; i < 200; i++ {
			if _, err := r.Resolve(desc, nil, nil); err != nil {
				t.Errorf("Resolve: %v", err)
				return
			}
		}
	}()
	wg.Wait()
}

func TestClassifyFirstMatchInDeclarationOrder(t *testing.T) {
	roles := []Role{
		{Name: "leading", Templates: []string{"icon"}, Exclusive: true},
		{Name: "icons", Tags: []string{"icon"}},
	}
	children := []node.NodeDescriptor{
		node.New("icon", node.Attrs("template", "icon")),
		node.New("icon", node.Attrs()),
		node.New("icon", node.Attrs("template", "icon")),
		node.New("text", node.Attrs()),
	}
	var overflow []int
	got := classify(roles, children, func(i int, _ string) { overflow = append(overflow, i) })

	want := []string{"leading", "icons", "", ""}
	for i, a := range got {
		name := ""
		if a.role != nil {
			name = a.role.Name
		}
		if name != want[i] {
			t.Errorf("child %d role = %q, want %q", i, name, want[i])
		}
	}
	if len(overflow) != 1 || overflow[0] != 2 {
		t.Errorf("overflow = %v, want [2]", overflow)
	}
}
