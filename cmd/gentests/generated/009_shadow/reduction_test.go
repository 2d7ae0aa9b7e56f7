
package gentests
import _ "embed"
import "testing"
import "github.com/vic/gostlc/cmd/gentests/helper"
//go:embed input.json
var input string
//go:embed output.json
var output string
func Test_009_shadow_Evaluation(t *testing.T) {
	helper.CheckEvaluation(t, "009_shadow", input, output, 3)
}
