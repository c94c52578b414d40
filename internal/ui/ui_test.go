package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/vpcplan/internal/netplan"
	pkgtypes "github.com/vietdv277/vpcplan/pkg/types"
)

func demoPlan(t *testing.T) *netplan.NetworkPlan {
	t.Helper()
	cfg := netplan.DefaultNetworkConfig()
	cfg.ProjectName = "demo"
	cfg.VPCCIDR = "10.0.0.0/16"
	cfg.PublicSubnetCIDRs = []string{"10.0.1.0/24", "10.0.2.0/24"}
	cfg.PrivateSubnetCIDRs = []string{"10.0.10.0/24"}

	plan, err := netplan.Build(cfg, []string{"us-east-1a", "us-east-1b", "us-east-1c"})
	require.NoError(t, err)
	return plan
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcde", padRight("abcde", 5))
	assert.Equal(t, "ab...", padRight("abcdefgh", 5))
}

func TestRenderPlan(t *testing.T) {
	out := RenderPlan(demoPlan(t))

	for _, want := range []string{
		"demo-vpc",
		"demo-igw",
		"demo-nacl",
		"demo-pub-sn-az-1",
		"demo-pub-sn-az-2",
		"demo-pvt-sn-az-1",
		"demo-pub-rt-1",
		"demo-pvt-rt-1",
		"10.0.10.0/24",
		"us-east-1c",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderPlanEmpty(t *testing.T) {
	cfg := netplan.DefaultNetworkConfig()
	cfg.ProjectName = "demo"
	cfg.VPCCIDR = "10.0.0.0/16"

	plan, err := netplan.Build(cfg, nil)
	require.NoError(t, err)

	out := RenderPlan(plan)
	assert.Contains(t, out, "demo-vpc")
	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "No subnets planned")
}

func TestRenderOutputs(t *testing.T) {
	out := RenderOutputs(&pkgtypes.NetworkOutputs{
		RunID:           "run-1",
		VPCID:           "vpc-1",
		PublicSubnetIDs: []string{"subnet-1", "subnet-2"},
	})
	assert.Contains(t, out, "vpc-1")
	assert.Contains(t, out, "subnet-1, subnet-2")
	assert.Contains(t, out, "run-1")
}

func TestRenderTables(t *testing.T) {
	vpcs := RenderVPCTable([]pkgtypes.VPC{{ID: "vpc-1", Name: "demo-vpc", CIDR: "10.0.0.0/16", State: "available"}})
	assert.Contains(t, vpcs, "vpc-1")
	assert.Contains(t, vpcs, "1 VPCs")

	subnets := RenderSubnetTable([]pkgtypes.Subnet{{ID: "subnet-1", CIDR: "10.0.1.0/24", AZ: "us-east-1a", Public: true}})
	assert.Contains(t, subnets, "subnet-1")
	assert.Contains(t, subnets, "Yes")
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want bool
	}{
		{"yes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, true},
		{"upper yes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}, true},
		{"no", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, false},
		{"enter defaults to no", tea.KeyMsg{Type: tea.KeyEnter}, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewConfirmModel("Apply?")
			assert.Contains(t, m.View(), "Apply?")

			next, cmd := m.Update(tt.msg)
			require.NotNil(t, cmd)

			got := next.(ConfirmModel)
			assert.Equal(t, tt.want, got.Confirmed())
			assert.Empty(t, got.View())
		})
	}
}

func TestConfirmModelIgnoresOtherKeys(t *testing.T) {
	m := NewConfirmModel("Apply?")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)
	assert.False(t, next.(ConfirmModel).Confirmed())
	assert.NotEmpty(t, next.(ConfirmModel).View())
}
