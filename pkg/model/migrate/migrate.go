package migrate

import (
	"context"

	"github.com/reagentlab/tracker/pkg/middleware/db"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/utils"
)

func Table(_ context.Context) error {
	ins := db.DB().DBIns()
	return utils.IfErrReturn(func() error {
		return ins.AutoMigrate(
			&model.User{},                   // 用户
			&model.UserRole{},               // 用户角色
			&model.Laboratory{},             // 实验室
			&model.ReagentField{},           // 试剂字段字典
			&model.Pictogram{},              // 象形图
			&model.ClpClassification{},      // CLP 分类
			&model.HazardStatement{},        // 危险说明
			&model.PrecautionaryStatement{}, // 防范说明
			&model.Reagent{},                // 试剂目录
			&model.ProjectProcedure{},       // 科研项目
			&model.PersonalReagent{},        // 个人试剂
			&model.ReagentRequest{},         // 试剂转移申请
			&model.AuditRecord{},            // 审计记录
		)
	}, func() error {
		// at most one awaiting request per personal reagent
		return ins.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_rr_one_awaiting ON reagent_request (personal_reagent_id) WHERE status = 'AW'`).Error
	})
}
