package convgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/hoehwa/internal/level"
)

const systemTemplate = "당신은 친절하고 능숙한 %[1]s 회화 도우미입니다. " +
	"주어진 상황과 장소에 맞는 한국어 질문을 생성하고 이를 %[1]s로 정확히 번역해주세요. " +
	"다음 레벨 설명을 엄격히 준수하세요: %[2]s " +
	"번역 시 원문의 의미와 구조를 그대로 유지하며, 추가적인 설명이나 확장을 하지 마세요. " +
	"레벨에 맞는 적절한 어휘를 사용하세요. " +
	"불필요한 설명이나 소개 문구 없이 바로 질문과 번역을 제공해주세요."

// formalBlock is appended for Chinese when formal mode is on.
const formalBlock = `
1. 격식 있는 용어, 성어, 사자성어를 적절히 사용하여 번역해주세요.
2. 각 문장에 1-2개의 격식 있는 표현이나 사자성어를 포함시키되, 과도한 사용은 피해주세요.
예시: '面试' → '甄选人才', '竞争优势' → '核心竞争力', '诚实' → '诚实守信' 등을 상황에 맞게 사용하세요.
3. 다음과 같은 격식 있는 표현을 적극 활용하세요:
'甄选人才', '核心竞争力', '诚实守信', '迎刃而解', '宏伟蓝图', '价值理念',
'企业文化', '英才', '社会担当', '贡献良多', '履历书', '贵司/敝司', '长处',
'不足', '发展蓝图', '阅历', '精英团队' 등
4. 문장의 자연스러움을 유지하면서 격식을 높이는 것이 중요합니다.`

// SystemMessage builds the system instruction for the given language and
// level. It fails with level.ErrUnknownLevel when lvl is not in the catalog.
func SystemMessage(lang Language, lvl level.Level, formal bool) (string, error) {
	rubric, err := level.Lookup(lvl)
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf(systemTemplate, lang.Name(), rubric.Description)
	if (Request{Language: lang, Formal: formal}).FormalApplies() {
		msg += formalBlock
	}
	return msg, nil
}

// UserQuery builds the user message describing the scenario and the
// required output layout. Field contents are embedded verbatim.
func UserQuery(req Request) string {
	qa := req.QuestionType == QuestionAndAnswer
	lang := req.Language.Name()

	var b strings.Builder

	if qa {
		fmt.Fprintf(&b, "다음 시나리오에 맞는 한국어 질문 %d개와 그에 대한 답변를 생성하고 %s로 번역해주세요:\n", req.QuestionType.ItemCount(), lang)
	} else {
		fmt.Fprintf(&b, "다음 시나리오에 맞는 한국어 질문 %d개를 생성하고 %s로 번역해주세요:\n", req.QuestionType.ItemCount(), lang)
	}
	fmt.Fprintf(&b, "장소: %s\n", req.Place)
	fmt.Fprintf(&b, "상황: %s\n", req.Situation)
	fmt.Fprintf(&b, "역할: %s (질문자)\n", req.Role)
	fmt.Fprintf(&b, "레벨: %s\n", req.Level.Label())

	if qa {
		fmt.Fprintf(&b, "질문은 %s이 하고, 답변은 상황에 맞는 다른 역할(예: 면접관)이 하도록 해주세요.\n", req.Role)
		b.WriteString("각 질문과 답변을 다음 형식으로 제공해주세요:\n")
	} else {
		b.WriteString("각 질문을 다음 형식으로 제공해주세요:\n")
	}

	b.WriteString("1.\n")
	b.WriteString("[한국어 질문]\n")
	fmt.Fprintf(&b, "[번역된 %s]\n", lang)
	if qa {
		b.WriteString("[한국어 답변]\n")
		fmt.Fprintf(&b, "[번역된 %s 답변]\n", lang)
	}

	return b.String()
}
