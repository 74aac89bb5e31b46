package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/visriv/betaVAE/core/model"
	"github.com/visriv/betaVAE/pkg/errors"
)

// PixelScaler は画素値を[0, 1]の範囲に正規化するスケーラー
// データ全体で単一の最小値・最大値を学習し、全画素に同じ変換を適用する
// （特徴量ごとにスケーリングするMin-Maxスケーラーと異なり、画像の
// 明暗関係を保つためグローバルにスケーリングする）
type PixelScaler struct {
	state *model.StateManager

	// DataMin は学習データ全体の最小画素値
	DataMin float64

	// DataMax は学習データ全体の最大画素値
	DataMax float64

	// Scale はスケール (max - min)
	Scale float64
}

// NewPixelScaler は新しいPixelScalerを作成する
//
// 使用例:
//
//	scaler := preprocessing.NewPixelScaler()
//	err := scaler.Fit(X)
//	XScaled, err := scaler.Transform(X)
func NewPixelScaler() *PixelScaler {
	return &PixelScaler{
		state: model.NewStateManager(),
	}
}

// IsFitted はスケーラーが学習済みかどうかを返す
func (p *PixelScaler) IsFitted() bool {
	return p.state.IsFitted()
}

// Fit は訓練データから最小値・最大値を計算する
//
// パラメータ:
//   - X: 訓練データ (n_samples × n_features の行列)
//
// 戻り値:
//   - error: エラーが発生した場合
func (p *PixelScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("PixelScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	// NaN/Infを含むデータからは範囲を学習できない
	if err := errors.CheckMatrix("PixelScaler.Fit", X, r, c, 0); err != nil {
		return err
	}

	// データ全体の最小値・最大値を計算
	min := X.At(0, 0)
	max := X.At(0, 0)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			val := X.At(i, j)
			if val < min {
				min = val
			}
			if val > max {
				max = val
			}
		}
	}

	p.DataMin = min
	p.DataMax = max

	// 定数データの場合、スケールを1に設定（ゼロ除算を避ける）
	dataRange := max - min
	if math.Abs(dataRange) < 1e-8 {
		p.Scale = 1.0
	} else {
		p.Scale = dataRange
	}

	p.state.SetDimensions(c, r)
	p.state.SetFitted()
	return nil
}

// Transform は学習済みの範囲を使って画素値を[0, 1]にスケーリングする
//
// パラメータ:
//   - X: 変換するデータ
//
// 戻り値:
//   - mat.Matrix: スケーリングされたデータ
//   - error: エラーが発生した場合
func (p *PixelScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !p.state.IsFitted() {
		return nil, errors.NewNotFittedError("PixelScaler", "Transform")
	}

	r, c := X.Dims()
	nFeatures, _ := p.state.GetDimensions()
	if c != nFeatures {
		return nil, errors.NewDimensionError("PixelScaler.Transform", nFeatures, c, 1)
	}

	// 結果を格納する行列を作成
	result := mat.NewDense(r, c, nil)

	// 各画素をスケーリング
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			scaled := (X.At(i, j) - p.DataMin) / p.Scale
			result.Set(i, j, scaled)
		}
	}

	return result, nil
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (p *PixelScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// InverseTransform はスケーリングされた画素値を元の範囲に戻す
//
// パラメータ:
//   - X: スケーリングされたデータ
//
// 戻り値:
//   - mat.Matrix: 元の範囲に戻されたデータ
//   - error: エラーが発生した場合
func (p *PixelScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !p.state.IsFitted() {
		return nil, errors.NewNotFittedError("PixelScaler", "InverseTransform")
	}

	r, c := X.Dims()
	nFeatures, _ := p.state.GetDimensions()
	if c != nFeatures {
		return nil, errors.NewDimensionError("PixelScaler.InverseTransform", nFeatures, c, 1)
	}

	// 結果を格納する行列を作成
	result := mat.NewDense(r, c, nil)

	// 各画素を逆変換
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			original := X.At(i, j)*p.Scale + p.DataMin
			result.Set(i, j, original)
		}
	}

	return result, nil
}

// String はスケーラーの文字列表現を返す
func (p *PixelScaler) String() string {
	if !p.state.IsFitted() {
		return "PixelScaler()"
	}
	nFeatures, _ := p.state.GetDimensions()
	return fmt.Sprintf("PixelScaler(data_min=%.1f, data_max=%.1f, n_features=%d)",
		p.DataMin, p.DataMax, nFeatures)
}
