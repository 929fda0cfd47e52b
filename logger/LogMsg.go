package logger

const SessionStartMsg = "新的一局開始 level:%d speed:%v"
const LevelUpMsg = "電腦漏接！進入第 %d 關 speed:%v"
const LevelResumeMsg = "第 %d 關開始"
const GameOverMsg = "玩家漏接，遊戲結束 level:%d"
const GameWinMsg = "玩家贏了！ level:%d"
const RestartIgnoredMsg = "遊戲尚未結束，忽略重新開始 phase:%s"

const ConfigMissingMsg = "找不到設定檔 %s，使用預設值"
const ScreenInitFailedMsg = "終端機初始化失敗: %v"
const QuitMsg = "玩家離開遊戲"
