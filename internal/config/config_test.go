package config_test

import (
	"testing"

	"github.com/beanstalk-lang/beanstalk/internal/config"
	"github.com/beanstalk-lang/beanstalk/internal/token"
)

func TestTokenSetContains(t *testing.T) {
	set := config.NewTokenSet(token.KwFun, token.KwVar)
	if !set.Contains(token.KwFun) {
		t.Errorf("Contains(KwFun) = false; want true")
	}
	if set.Contains(token.KwStruct) {
		t.Errorf("Contains(KwStruct) = true; want false")
	}
}

func TestTopLevelSyncTokensIncludesEOF(t *testing.T) {
	if !config.TopLevelSyncTokens.Contains(token.EOF) {
		t.Errorf("TopLevelSyncTokens does not contain EOF")
	}
	if !config.TopLevelSyncTokens.Contains(token.KwFun) {
		t.Errorf("TopLevelSyncTokens does not contain KwFun")
	}
}

func TestBinaryOperatorInfoForKnownAndUnknown(t *testing.T) {
	info := config.BinaryOperatorInfoFor(token.StarStar)
	if info == nil {
		t.Fatalf("BinaryOperatorInfoFor(StarStar) = nil")
	}
	if info.Precedence != config.PrecPower || info.Assoc != config.AssocRight {
		t.Errorf("StarStar info = %+v; want Power/Right-associative", info)
	}
	if got := config.BinaryOperatorInfoFor(token.LBrace); got != nil {
		t.Errorf("BinaryOperatorInfoFor(LBrace) = %+v; want nil", got)
	}
}

func TestRelationalOperatorsAreNonChaining(t *testing.T) {
	for _, sym := range []token.Type{token.Lt, token.Gt, token.LtEq, token.GtEq, token.KwIs, token.KwAs} {
		info := config.BinaryOperatorInfoFor(sym)
		if info == nil {
			t.Fatalf("no table entry for relational operator %s", sym)
		}
		if info.Chained {
			t.Errorf("%s.Chained = true; relational operators must be non-chaining", sym)
		}
	}
}

func TestPrecedenceLadderIsStrictlyIncreasing(t *testing.T) {
	levels := []config.Precedence{
		config.PrecAssignment, config.PrecConditional, config.PrecNullCoalesce,
		config.PrecEquality, config.PrecBitwiseOr, config.PrecBitwiseXor,
		config.PrecBitwiseAnd, config.PrecRelational, config.PrecShift,
		config.PrecAdditive, config.PrecMultiplicative, config.PrecPower,
		config.PrecSwitchWith, config.PrecRange, config.PrecPrefixUnary,
		config.PrecPostfixChain, config.PrecPrimary,
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("level %d (%d) is not greater than level %d (%d)", i, levels[i], i-1, levels[i-1])
		}
	}
}
